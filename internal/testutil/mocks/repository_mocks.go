package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/kanaflash/internal/models"
)

// MockSettingsRepository is a mock implementation of repository.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Load(ctx context.Context) (models.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings models.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockMistakeRepository is a mock implementation of repository.MistakeRepository
type MockMistakeRepository struct {
	mock.Mock
}

func (m *MockMistakeRepository) Load(ctx context.Context) ([]models.MistakeEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MistakeEntry), args.Error(1)
}

func (m *MockMistakeRepository) Save(ctx context.Context, entries []models.MistakeEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// MockTestRecordRepository is a mock implementation of repository.TestRecordRepository
type MockTestRecordRepository struct {
	mock.Mock
}

func (m *MockTestRecordRepository) Load(ctx context.Context) ([]models.TestRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TestRecord), args.Error(1)
}

func (m *MockTestRecordRepository) Save(ctx context.Context, records []models.TestRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}
