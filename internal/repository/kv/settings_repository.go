package kv

import (
	"context"

	"github.com/vytor/kanaflash/internal/logger"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/repository"
	"github.com/vytor/kanaflash/internal/storage"
)

type settingsRepository struct {
	store    storage.KeyValueStore
	defaults models.Settings
}

// NewSettingsRepository returns a SettingsRepository that seeds defaults on
// first load.
func NewSettingsRepository(store storage.KeyValueStore, defaults models.Settings) repository.SettingsRepository {
	return &settingsRepository{store: store, defaults: defaults}
}

func (r *settingsRepository) Load(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")

	var s storedSettings
	found, err := getJSON(ctx, r.store, repository.KeySettings, &s)
	if err != nil {
		log.Error("failed to load settings: %v", err)
		return models.Settings{}, err
	}
	if !found {
		log.Info("no stored settings, seeding defaults")
		seed(ctx, r.store, repository.KeySettings, r.defaults)
		return r.defaults, nil
	}
	return fillSettings(s.normalize(), r.defaults), nil
}

func (r *settingsRepository) Save(ctx context.Context, s models.Settings) error {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("saving settings: kana_type=%s, category=%s", s.KanaType, s.KanaCategory)

	if err := setJSON(ctx, r.store, repository.KeySettings, s); err != nil {
		log.Error("failed to save settings: %v", err)
		return err
	}
	return nil
}

// storedSettings also accepts the field names used by the mini-program
// client.
type storedSettings struct {
	models.Settings
	PlayMode                   string `json:"playMode"`
	RequiredConsecutiveCorrect int    `json:"requiredConsecutiveCorrect"`
}

func (s storedSettings) normalize() models.Settings {
	out := s.Settings
	if out.PlayOrder == "" {
		out.PlayOrder = s.PlayMode
	}
	if out.RequiredCorrectCount <= 0 {
		out.RequiredCorrectCount = s.RequiredConsecutiveCorrect
	}
	return out
}

// fillSettings replaces zero fields of s, written by clients that predate a
// field, with defaults.
func fillSettings(s, defaults models.Settings) models.Settings {
	if s.KanaType == "" {
		s.KanaType = defaults.KanaType
	}
	if s.KanaCategory == "" {
		s.KanaCategory = defaults.KanaCategory
	}
	if s.PlayOrder == "" {
		s.PlayOrder = defaults.PlayOrder
	}
	if s.PlayInterval <= 0 {
		s.PlayInterval = defaults.PlayInterval
	}
	if s.RequiredCorrectCount <= 0 {
		s.RequiredCorrectCount = defaults.RequiredCorrectCount
	}
	return s
}
