package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/repository"
	"github.com/vytor/kanaflash/internal/repository/kv"
	"github.com/vytor/kanaflash/internal/session"
	"github.com/vytor/kanaflash/internal/storage"
)

var (
	kanaA  = models.KanaItem{Kana: "あ", Romaji: "a"}
	kanaI  = models.KanaItem{Kana: "い", Romaji: "i"}
	kanaKa = models.KanaItem{Kana: "か", Romaji: "ka"}
	kanaKi = models.KanaItem{Kana: "き", Romaji: "ki"}
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// serviceSuite wires the real repositories over an in-memory store.
type serviceSuite struct {
	suite.Suite
	ctx          context.Context
	store        *storage.MemoryStore
	settingsRepo repository.SettingsRepository
	mistakeRepo  repository.MistakeRepository
	recordRepo   repository.TestRecordRepository
	state        *session.State
}

func (s *serviceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = storage.NewMemoryStore()
	s.settingsRepo = kv.NewSettingsRepository(s.store, models.DefaultSettings())
	s.mistakeRepo = kv.NewMistakeRepository(s.store)
	s.recordRepo = kv.NewTestRecordRepository(s.store)

	state, err := session.Load(s.ctx, s.settingsRepo, s.mistakeRepo, s.recordRepo)
	s.Require().NoError(err)
	s.state = state
}

func (s *serviceSuite) newMistakeService() *mistakeService {
	svc := NewMistakeService(s.state, s.mistakeRepo).(*mistakeService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func (s *serviceSuite) newTestRecordService() *testRecordService {
	svc := NewTestRecordService(s.state, s.recordRepo).(*testRecordService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// storedMistakes reads the collection back through a fresh repository.
func (s *serviceSuite) storedMistakes() []models.MistakeEntry {
	entries, err := kv.NewMistakeRepository(s.store).Load(s.ctx)
	s.Require().NoError(err)
	return entries
}

func (s *serviceSuite) storedRecords() []models.TestRecord {
	records, err := kv.NewTestRecordRepository(s.store).Load(s.ctx)
	s.Require().NoError(err)
	return records
}

func (s *serviceSuite) setThreshold(n int) {
	settings := models.DefaultSettings()
	settings.RequiredCorrectCount = n
	_, err := NewSettingsService(s.state, s.settingsRepo).Save(s.ctx, settings)
	s.Require().NoError(err)
}
