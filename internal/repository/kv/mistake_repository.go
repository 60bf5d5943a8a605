package kv

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vytor/kanaflash/internal/logger"
	"github.com/vytor/kanaflash/internal/mistake"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/repository"
	"github.com/vytor/kanaflash/internal/storage"
)

type mistakeRepository struct {
	store storage.KeyValueStore
}

// NewMistakeRepository returns a MistakeRepository stored under the
// "mistakes" key. Collections written under the legacy "wrongAnswers" key are
// read and migrated when "mistakes" is absent.
func NewMistakeRepository(store storage.KeyValueStore) repository.MistakeRepository {
	return &mistakeRepository{store: store}
}

func (r *mistakeRepository) Load(ctx context.Context) ([]models.MistakeEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("mistake_repo")

	var stored []storedMistake
	found, err := getJSON(ctx, r.store, repository.KeyMistakes, &stored)
	if err != nil {
		log.Error("failed to load mistakes: %v", err)
		return nil, err
	}
	if found {
		entries := decodeMistakes(stored)
		log.Debug("loaded %d mistakes", len(entries))
		return entries, nil
	}

	found, err = getJSON(ctx, r.store, repository.KeyLegacyMistakes, &stored)
	if err != nil {
		log.Error("failed to load legacy mistakes: %v", err)
		return nil, err
	}
	entries := decodeMistakes(stored)
	if found {
		log.Info("migrating %d mistakes from %s", len(entries), repository.KeyLegacyMistakes)
	}
	seed(ctx, r.store, repository.KeyMistakes, entries)
	return entries, nil
}

func (r *mistakeRepository) Save(ctx context.Context, entries []models.MistakeEntry) error {
	log := logger.FromContext(ctx).WithPrefix("mistake_repo")
	log.Debug("saving %d mistakes", len(entries))

	if entries == nil {
		entries = []models.MistakeEntry{}
	}
	if err := setJSON(ctx, r.store, repository.KeyMistakes, entries); err != nil {
		log.Error("failed to save mistakes: %v", err)
		return err
	}
	return nil
}

// storedMistake accepts the three layouts that have been written under the
// mistake keys:
//
//	{"kana":{"kana":"あ","romaji":"a"},"consecutiveCorrect":0,"createdAt":"..."}
//	{"kana":"あ","romaji":"a","correctCount":0}
//	{"kana":{"hiragana":"あ","katakana":"ア","romaji":"a"},"correctCount":0,"timestamp":1700000000000}
type storedMistake struct {
	Kana               json.RawMessage `json:"kana"`
	Romaji             string          `json:"romaji"`
	ConsecutiveCorrect *int            `json:"consecutiveCorrect"`
	CorrectCount       *int            `json:"correctCount"`
	CreatedAt          *time.Time      `json:"createdAt"`
	Timestamp          *int64          `json:"timestamp"`
}

type storedKana struct {
	Kana     string `json:"kana"`
	Hiragana string `json:"hiragana"`
	Katakana string `json:"katakana"`
	Romaji   string `json:"romaji"`
}

func (m storedMistake) entry() (models.MistakeEntry, bool) {
	var e models.MistakeEntry

	var flat string
	if err := json.Unmarshal(m.Kana, &flat); err == nil {
		e.Kana = models.KanaItem{Kana: flat, Romaji: m.Romaji}
	} else {
		var k storedKana
		if err := json.Unmarshal(m.Kana, &k); err != nil {
			return e, false
		}
		script := k.Kana
		if script == "" {
			script = k.Hiragana
		}
		if script == "" {
			script = k.Katakana
		}
		romaji := k.Romaji
		if romaji == "" {
			romaji = m.Romaji
		}
		e.Kana = models.KanaItem{Kana: script, Romaji: romaji}
	}
	if e.Kana.Kana == "" || e.Kana.Romaji == "" {
		return e, false
	}

	switch {
	case m.ConsecutiveCorrect != nil:
		e.ConsecutiveCorrect = *m.ConsecutiveCorrect
	case m.CorrectCount != nil:
		e.ConsecutiveCorrect = *m.CorrectCount
	}

	switch {
	case m.CreatedAt != nil:
		e.CreatedAt = *m.CreatedAt
	case m.Timestamp != nil:
		e.CreatedAt = time.UnixMilli(*m.Timestamp).UTC()
	}
	return e, true
}

func decodeMistakes(stored []storedMistake) []models.MistakeEntry {
	entries := make([]models.MistakeEntry, 0, len(stored))
	for _, m := range stored {
		if e, ok := m.entry(); ok {
			entries = append(entries, e)
		}
	}
	return mistake.Dedupe(entries)
}
