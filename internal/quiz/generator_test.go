package quiz_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/kanaflash/internal/kana"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/quiz"
)

func countOf(items []models.KanaItem, k models.KanaItem) int {
	n := 0
	for _, it := range items {
		if it.Equal(k) {
			n++
		}
	}
	return n
}

func assertDistinctRomaji(t *testing.T, items []models.KanaItem) {
	t.Helper()
	seen := map[string]bool{}
	for _, it := range items {
		assert.False(t, seen[it.Romaji], "duplicate romaji %s", it.Romaji)
		seen[it.Romaji] = true
	}
}

func TestOptions_ContainsCorrectOnce(t *testing.T) {
	g := quiz.NewWithSource(rand.NewSource(1))
	pool := kana.List(models.KanaTypeBoth, models.CategoryAll)

	for _, correct := range pool {
		options := g.Options(correct, pool, 4)

		require.Len(t, options, 4)
		assert.Equal(t, 1, countOf(options, correct), "correct %s", correct)
		assertDistinctRomaji(t, options)
	}
}

func TestOptions_SmallPools(t *testing.T) {
	g := quiz.NewWithSource(rand.NewSource(7))
	seion := kana.List(models.KanaTypeHiragana, models.CategorySeion)

	for size := 3; size <= 8; size++ {
		pool := seion[:size]
		options := g.Options(pool[0], pool, 4)

		assert.Equal(t, 1, countOf(options, pool[0]))
		assertDistinctRomaji(t, options)
		assert.Len(t, options, min(4, size))
	}
}

func TestOptions_PoolOfFourRequestFour(t *testing.T) {
	g := quiz.New()
	pool := kana.List(models.KanaTypeHiragana, models.CategorySeion)[:4]

	options := g.Options(pool[2], pool, 4)

	assert.Len(t, options, 4)
	assert.Equal(t, 1, countOf(options, pool[2]))
}

func TestOptions_ShortSetWhenPoolExhausted(t *testing.T) {
	g := quiz.New()
	correct := models.KanaItem{Kana: "あ", Romaji: "a"}
	pool := []models.KanaItem{
		correct,
		{Kana: "ア", Romaji: "a"},
		{Kana: "か", Romaji: "ka"},
		{Kana: "カ", Romaji: "ka"},
	}

	options := g.Options(correct, pool, 4)

	require.Len(t, options, 2)
	assert.Equal(t, 1, countOf(options, correct))
	assertDistinctRomaji(t, options)
}

func TestOptions_EmptyPool(t *testing.T) {
	g := quiz.New()
	correct := models.KanaItem{Kana: "あ", Romaji: "a"}

	options := g.Options(correct, nil, 4)

	assert.Equal(t, []models.KanaItem{correct}, options)
}

func TestOptions_DefaultCount(t *testing.T) {
	g := quiz.New()
	pool := kana.All()

	assert.Len(t, g.Options(pool[0], pool, 0), quiz.DefaultOptionsCount)
	assert.Len(t, g.Options(pool[0], pool, -3), quiz.DefaultOptionsCount)
}

func TestOptions_CorrectPositionRoughlyUniform(t *testing.T) {
	g := quiz.NewWithSource(rand.NewSource(42))
	pool := kana.List(models.KanaTypeHiragana, models.CategoryAll)
	correct := pool[10]

	const trials = 4000
	positions := make([]int, 4)
	for i := 0; i < trials; i++ {
		options := g.Options(correct, pool, 4)
		for pos, o := range options {
			if o.Equal(correct) {
				positions[pos]++
			}
		}
	}

	for pos, n := range positions {
		// expected 1000 per slot
		assert.InDelta(t, trials/4, n, 200, "position %d chosen %d times", pos, n)
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	g := quiz.New()
	items := kana.List(models.KanaTypeHiragana, models.CategorySeion)
	before := kana.List(models.KanaTypeHiragana, models.CategorySeion)

	shuffled := g.Shuffle(items)

	assert.Equal(t, before, items)
	assert.ElementsMatch(t, items, shuffled)
}

func TestBuildTest(t *testing.T) {
	g := quiz.New()
	items := kana.List(models.KanaTypeKatakana, models.CategorySeion)

	questions := g.BuildTest(items, 10, 4)

	require.Len(t, questions, 10)
	seen := map[models.KanaItem]bool{}
	for _, q := range questions {
		assert.False(t, seen[q.Kana], "question repeated: %s", q.Kana)
		seen[q.Kana] = true
		assert.Len(t, q.Options, 4)
		assert.Equal(t, 1, countOf(q.Options, q.Kana))
	}
}

func TestBuildTest_AllWhenNNotPositive(t *testing.T) {
	g := quiz.New()
	items := kana.List(models.KanaTypeHiragana, models.CategoryDakuon)

	assert.Len(t, g.BuildTest(items, 0, 4), len(items))
	assert.Len(t, g.BuildTest(items, 500, 4), len(items))
}

func TestPlaylist(t *testing.T) {
	g := quiz.New()
	items := kana.List(models.KanaTypeHiragana, models.CategorySeion)

	assert.Equal(t, items, g.Playlist(items, models.PlayOrderSequential))
	assert.ElementsMatch(t, items, g.Playlist(items, models.PlayOrderRandom))
}

func TestGrade(t *testing.T) {
	a := models.KanaItem{Kana: "あ", Romaji: "a"}
	i := models.KanaItem{Kana: "い", Romaji: "i"}
	finished := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	record := quiz.Grade([]models.Answer{
		{Kana: a, Chosen: a},
		{Kana: i, Chosen: a},
		{Kana: i, Chosen: i},
	}, 95*time.Second, finished)

	assert.Equal(t, 3, record.Total)
	assert.Equal(t, 2, record.Correct)
	assert.Equal(t, 66.7, record.Accuracy)
	assert.Equal(t, 95.0, record.Duration)
	assert.Equal(t, finished, record.Date)
	assert.Empty(t, record.ID)
}

func TestGrade_NoAnswers(t *testing.T) {
	record := quiz.Grade(nil, -time.Second, time.Now())

	assert.Equal(t, 0.0, record.Accuracy)
	assert.Equal(t, 0.0, record.Duration)
}
