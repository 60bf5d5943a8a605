package services

import (
	"context"

	"github.com/vytor/kanaflash/internal/errors"
	"github.com/vytor/kanaflash/internal/kana"
	"github.com/vytor/kanaflash/internal/logger"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/repository"
	"github.com/vytor/kanaflash/internal/session"
)

// Bounds accepted by SettingsService.Save.
const (
	MaxPlayInterval         = 60
	MaxRequiredCorrectCount = 10
)

// SettingsService reads and changes the learner settings
type SettingsService interface {
	Get(ctx context.Context) models.Settings
	Save(ctx context.Context, settings models.Settings) (models.Settings, error)
}

type settingsService struct {
	state *session.State
	repo  repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(state *session.State, repo repository.SettingsRepository) SettingsService {
	return &settingsService{state: state, repo: repo}
}

func (s *settingsService) Get(ctx context.Context) models.Settings {
	return s.state.Settings()
}

func (s *settingsService) Save(ctx context.Context, settings models.Settings) (models.Settings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings")
	log.Debug("saving settings: %+v", settings)

	if err := ValidateSettings(settings); err != nil {
		return models.Settings{}, err
	}

	s.state.Update(func(tx *session.Tx) {
		tx.Settings = settings
		if err := s.repo.Save(ctx, settings); err != nil {
			log.Error("failed to persist settings: %v", err)
		}
	})
	return settings, nil
}

// ValidateSettings returns a validation error for the first invalid field.
func ValidateSettings(s models.Settings) error {
	if !kana.ValidType(s.KanaType) {
		return errors.NewValidationError("kanaType", "must be hiragana, katakana or both")
	}
	if !kana.ValidCategory(s.KanaCategory) {
		return errors.NewValidationError("kanaCategory", "must be seion, dakuon, youon or all")
	}
	if s.PlayOrder != models.PlayOrderSequential && s.PlayOrder != models.PlayOrderRandom {
		return errors.NewValidationError("playOrder", "must be sequential or random")
	}
	if s.PlayInterval < 1 || s.PlayInterval > MaxPlayInterval {
		return errors.NewValidationError("playInterval", "must be between 1 and 60 seconds")
	}
	if s.RequiredCorrectCount < 1 || s.RequiredCorrectCount > MaxRequiredCorrectCount {
		return errors.NewValidationError("requiredCorrectCount", "must be between 1 and 10")
	}
	return nil
}
