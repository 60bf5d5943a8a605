// Package quiz builds multiple-choice kana questions.
package quiz

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/vytor/kanaflash/internal/models"
)

// DefaultOptionsCount is used when a caller asks for zero or fewer options.
const DefaultOptionsCount = 4

// Generator produces randomized option sets. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Options returns count options for correct drawn from pool. The correct item
// appears exactly once, distractors never share a romaji with it or with each
// other, and the final order is uniformly shuffled. When the pool runs out of
// eligible distractors a shorter set is returned.
func (g *Generator) Options(correct models.KanaItem, pool []models.KanaItem, count int) []models.KanaItem {
	if count <= 0 {
		count = DefaultOptionsCount
	}

	available := make([]models.KanaItem, 0, len(pool))
	for _, k := range pool {
		if k.Romaji != correct.Romaji {
			available = append(available, k)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	options := []models.KanaItem{correct}
	used := map[string]struct{}{correct.Romaji: {}}
	for len(options) < count && len(available) > 0 {
		i := g.rnd.Intn(len(available))
		pick := available[i]
		last := len(available) - 1
		available[i] = available[last]
		available = available[:last]

		if _, dup := used[pick.Romaji]; dup {
			continue
		}
		used[pick.Romaji] = struct{}{}
		options = append(options, pick)
	}

	g.shuffleLocked(options)
	return options
}

// Shuffle returns a shuffled copy of items.
func (g *Generator) Shuffle(items []models.KanaItem) []models.KanaItem {
	out := make([]models.KanaItem, len(items))
	copy(out, items)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.shuffleLocked(out)
	return out
}

// Fisher–Yates.
func (g *Generator) shuffleLocked(items []models.KanaItem) {
	for i := len(items) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// BuildTest picks up to n distinct kana from items in random order and pairs
// each with an option set drawn from the whole of items. n <= 0 uses every
// item.
func (g *Generator) BuildTest(items []models.KanaItem, n, optionsCount int) []models.Question {
	picked := g.Shuffle(items)
	if n > 0 && n < len(picked) {
		picked = picked[:n]
	}

	questions := make([]models.Question, 0, len(picked))
	for _, k := range picked {
		questions = append(questions, models.Question{
			Kana:    k,
			Options: g.Options(k, items, optionsCount),
		})
	}
	return questions
}

// Playlist orders items for playback: sequential keeps table order, random
// shuffles.
func (g *Generator) Playlist(items []models.KanaItem, order string) []models.KanaItem {
	if order == models.PlayOrderRandom {
		return g.Shuffle(items)
	}
	out := make([]models.KanaItem, len(items))
	copy(out, items)
	return out
}

// Grade scores answers. The returned record has no ID.
func Grade(answers []models.Answer, duration time.Duration, finishedAt time.Time) models.TestRecord {
	correct := 0
	for _, a := range answers {
		if a.Correct() {
			correct++
		}
	}

	accuracy := 0.0
	if len(answers) > 0 {
		accuracy = math.Round(float64(correct)/float64(len(answers))*1000) / 10
	}
	if duration < 0 {
		duration = 0
	}

	return models.TestRecord{
		Date:     finishedAt,
		Accuracy: accuracy,
		Duration: math.Round(duration.Seconds()*10) / 10,
		Total:    len(answers),
		Correct:  correct,
	}
}
