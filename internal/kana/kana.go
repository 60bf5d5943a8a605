// Package kana holds the fixed hiragana/katakana reference table.
package kana

import (
	"github.com/vytor/kanaflash/internal/models"
)

var (
	hiragana = map[string][]models.KanaItem{
		models.CategorySeion:  hiraganaSeion,
		models.CategoryDakuon: hiraganaDakuon,
		models.CategoryYouon:  hiraganaYouon,
	}
	katakana = map[string][]models.KanaItem{
		models.CategorySeion:  katakanaSeion,
		models.CategoryDakuon: katakanaDakuon,
		models.CategoryYouon:  katakanaYouon,
	}
	categoryOrder = []string{models.CategorySeion, models.CategoryDakuon, models.CategoryYouon}
)

// ValidType reports whether t names a kana script selector.
func ValidType(t string) bool {
	switch t {
	case models.KanaTypeHiragana, models.KanaTypeKatakana, models.KanaTypeBoth:
		return true
	}
	return false
}

// ValidCategory reports whether c names a kana category selector.
func ValidCategory(c string) bool {
	switch c {
	case models.CategorySeion, models.CategoryDakuon, models.CategoryYouon, models.CategoryAll:
		return true
	}
	return false
}

// List returns the kana selected by script type and category in table order.
// Unknown types fall back to both scripts and unknown categories to all
// categories. The returned slice is a fresh copy.
func List(kanaType, category string) []models.KanaItem {
	var out []models.KanaItem
	switch kanaType {
	case models.KanaTypeHiragana:
		out = appendCategory(out, hiragana, category)
	case models.KanaTypeKatakana:
		out = appendCategory(out, katakana, category)
	default:
		out = appendCategory(out, hiragana, category)
		out = appendCategory(out, katakana, category)
	}
	return out
}

// All returns every kana in both scripts.
func All() []models.KanaItem {
	return List(models.KanaTypeBoth, models.CategoryAll)
}

func appendCategory(dst []models.KanaItem, script map[string][]models.KanaItem, category string) []models.KanaItem {
	if items, ok := script[category]; ok {
		return append(dst, items...)
	}
	for _, c := range categoryOrder {
		dst = append(dst, script[c]...)
	}
	return dst
}

// Romaji returns the distinct romaji of the table in first-seen order.
func Romaji() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, k := range All() {
		if _, ok := seen[k.Romaji]; ok {
			continue
		}
		seen[k.Romaji] = struct{}{}
		out = append(out, k.Romaji)
	}
	return out
}

// Lookup finds the table entry with the given script form and romaji.
func Lookup(kanaChar, romaji string) (models.KanaItem, bool) {
	for _, k := range All() {
		if k.Kana == kanaChar && k.Romaji == romaji {
			return k, true
		}
	}
	return models.KanaItem{}, false
}
