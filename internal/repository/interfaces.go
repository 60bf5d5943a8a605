package repository

import (
	"context"

	"github.com/vytor/kanaflash/internal/models"
)

// Storage keys.
const (
	KeySettings          = "settings"
	KeyMistakes          = "mistakes"
	KeyLegacyMistakes    = "wrongAnswers"
	KeyTestRecords       = "testRecords"
	KeyLegacyTestRecords = "testResults"
)

// SettingsRepository persists the learner settings. Load seeds the store with
// the defaults when nothing has been saved yet.
type SettingsRepository interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}

// MistakeRepository persists the whole mistake collection at once.
type MistakeRepository interface {
	Load(ctx context.Context) ([]models.MistakeEntry, error)
	Save(ctx context.Context, entries []models.MistakeEntry) error
}

// TestRecordRepository persists the whole list of test records at once.
type TestRecordRepository interface {
	Load(ctx context.Context) ([]models.TestRecord, error)
	Save(ctx context.Context, records []models.TestRecord) error
}
