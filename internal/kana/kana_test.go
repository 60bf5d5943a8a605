package kana_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/kanaflash/internal/kana"
	"github.com/vytor/kanaflash/internal/models"
)

func TestList_Selectors(t *testing.T) {
	tests := []struct {
		name     string
		kanaType string
		category string
		expected int
	}{
		{name: "hiragana seion", kanaType: models.KanaTypeHiragana, category: models.CategorySeion, expected: 46},
		{name: "hiragana dakuon", kanaType: models.KanaTypeHiragana, category: models.CategoryDakuon, expected: 23},
		{name: "hiragana youon", kanaType: models.KanaTypeHiragana, category: models.CategoryYouon, expected: 33},
		{name: "hiragana all", kanaType: models.KanaTypeHiragana, category: models.CategoryAll, expected: 102},
		{name: "katakana seion", kanaType: models.KanaTypeKatakana, category: models.CategorySeion, expected: 46},
		{name: "both all", kanaType: models.KanaTypeBoth, category: models.CategoryAll, expected: 204},
		{name: "unknown category falls back to all", kanaType: models.KanaTypeKatakana, category: "bogus", expected: 102},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, kana.List(tt.kanaType, tt.category), tt.expected)
		})
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	first := kana.List(models.KanaTypeHiragana, models.CategorySeion)
	first[0] = models.KanaItem{Kana: "x", Romaji: "x"}

	second := kana.List(models.KanaTypeHiragana, models.CategorySeion)
	assert.Equal(t, models.KanaItem{Kana: "あ", Romaji: "a"}, second[0])
}

func TestRomaji_Distinct(t *testing.T) {
	romaji := kana.Romaji()
	seen := map[string]bool{}
	for _, r := range romaji {
		require.False(t, seen[r], "duplicate romaji %s", r)
		seen[r] = true
	}
	assert.Len(t, romaji, 102)
}

func TestLookup(t *testing.T) {
	k, ok := kana.Lookup("キャ", "kya")
	require.True(t, ok)
	assert.Equal(t, "kya", k.Romaji)

	_, ok = kana.Lookup("あ", "ka")
	assert.False(t, ok)
}

func TestValidSelectors(t *testing.T) {
	assert.True(t, kana.ValidType(models.KanaTypeBoth))
	assert.False(t, kana.ValidType("romaji"))
	assert.True(t, kana.ValidCategory(models.CategoryYouon))
	assert.False(t, kana.ValidCategory(""))
}
