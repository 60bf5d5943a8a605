// Package mistake implements the mistake-list bookkeeping: kana answered
// wrongly are tracked until they have been answered correctly a configured
// number of times in a row.
//
// Every function treats its input slice as immutable and returns a new slice,
// so callers can swap a snapshot in one step.
package mistake

import (
	"time"

	"github.com/vytor/kanaflash/internal/models"
)

// Outcome describes what an update did to the collection.
type Outcome string

const (
	OutcomeAdded       Outcome = "added"
	OutcomeReset       Outcome = "reset"
	OutcomeIncremented Outcome = "incremented"
	OutcomeMastered    Outcome = "mastered"
	OutcomeRemoved     Outcome = "removed"
	OutcomeMissing     Outcome = "missing"
)

// Index returns the position of k in entries, or -1.
func Index(entries []models.MistakeEntry, k models.KanaItem) int {
	for i := range entries {
		if entries[i].Kana.Equal(k) {
			return i
		}
	}
	return -1
}

// RecordWrong resets the counter of an existing entry or appends a new one
// created at now.
func RecordWrong(entries []models.MistakeEntry, k models.KanaItem, now time.Time) ([]models.MistakeEntry, Outcome) {
	out := clone(entries)
	if i := Index(out, k); i >= 0 {
		out[i].ConsecutiveCorrect = 0
		return out, OutcomeReset
	}
	return append(out, models.MistakeEntry{Kana: k, ConsecutiveCorrect: 0, CreatedAt: now}), OutcomeAdded
}

// RecordCorrect increments the counter of k and drops the entry once the
// counter reaches threshold. A threshold below 1 is treated as 1.
func RecordCorrect(entries []models.MistakeEntry, k models.KanaItem, threshold int) ([]models.MistakeEntry, Outcome) {
	i := Index(entries, k)
	if i < 0 {
		return clone(entries), OutcomeMissing
	}
	if threshold < 1 {
		threshold = 1
	}
	out := clone(entries)
	out[i].ConsecutiveCorrect++
	if out[i].ConsecutiveCorrect >= threshold {
		return append(out[:i], out[i+1:]...), OutcomeMastered
	}
	return out, OutcomeIncremented
}

// Remove drops k if present.
func Remove(entries []models.MistakeEntry, k models.KanaItem) ([]models.MistakeEntry, Outcome) {
	i := Index(entries, k)
	if i < 0 {
		return clone(entries), OutcomeMissing
	}
	out := clone(entries)
	return append(out[:i], out[i+1:]...), OutcomeRemoved
}

// Dedupe keeps the first entry for every kana. Stored collections written by
// older clients may carry duplicates.
func Dedupe(entries []models.MistakeEntry) []models.MistakeEntry {
	out := make([]models.MistakeEntry, 0, len(entries))
	for _, e := range entries {
		if Index(out, e.Kana) >= 0 {
			continue
		}
		if e.ConsecutiveCorrect < 0 {
			e.ConsecutiveCorrect = 0
		}
		out = append(out, e)
	}
	return out
}

func clone(entries []models.MistakeEntry) []models.MistakeEntry {
	out := make([]models.MistakeEntry, len(entries))
	copy(out, entries)
	return out
}
