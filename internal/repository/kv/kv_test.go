package kv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/repository"
	"github.com/vytor/kanaflash/internal/repository/kv"
	"github.com/vytor/kanaflash/internal/storage"
	"github.com/vytor/kanaflash/internal/testutil/mocks"
)

type RepositorySuite struct {
	suite.Suite
	store *storage.MemoryStore
	ctx   context.Context
}

func (s *RepositorySuite) SetupTest() {
	s.store = storage.NewMemoryStore()
	s.ctx = context.Background()
}

func (s *RepositorySuite) raw(key string) string {
	v, err := s.store.Get(s.ctx, key)
	s.Require().NoError(err)
	return string(v)
}

func (s *RepositorySuite) TestSettings_SeedsDefaultsOnMiss() {
	repo := kv.NewSettingsRepository(s.store, models.DefaultSettings())

	settings, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(models.DefaultSettings(), settings)
	s.Assert().JSONEq(`{"kanaType":"hiragana","kanaCategory":"seion","playOrder":"sequential","playInterval":3,"requiredCorrectCount":3}`, s.raw(repository.KeySettings))
}

func (s *RepositorySuite) TestSettings_SaveThenLoad() {
	repo := kv.NewSettingsRepository(s.store, models.DefaultSettings())
	want := models.Settings{
		KanaType:             models.KanaTypeBoth,
		KanaCategory:         models.CategoryYouon,
		PlayOrder:            models.PlayOrderRandom,
		PlayInterval:         5,
		RequiredCorrectCount: 2,
	}

	s.Require().NoError(repo.Save(s.ctx, want))

	got, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(want, got)
}

func (s *RepositorySuite) TestSettings_MiniProgramFieldNames() {
	s.Require().NoError(s.store.Set(s.ctx, repository.KeySettings, []byte(
		`{"kanaType":"katakana","kanaCategory":"dakuon","playMode":"random","playInterval":2,"requiredConsecutiveCorrect":4}`)))
	repo := kv.NewSettingsRepository(s.store, models.DefaultSettings())

	got, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(models.PlayOrderRandom, got.PlayOrder)
	s.Assert().Equal(4, got.RequiredCorrectCount)
	s.Assert().Equal(2, got.PlayInterval)
}

func (s *RepositorySuite) TestSettings_PartialDocumentFilledFromDefaults() {
	s.Require().NoError(s.store.Set(s.ctx, repository.KeySettings, []byte(`{"kanaType":"both"}`)))
	repo := kv.NewSettingsRepository(s.store, models.DefaultSettings())

	got, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(models.KanaTypeBoth, got.KanaType)
	s.Assert().Equal(3, got.RequiredCorrectCount)
	s.Assert().Equal(models.CategorySeion, got.KanaCategory)
}

func (s *RepositorySuite) TestSettings_CorruptDocument() {
	s.Require().NoError(s.store.Set(s.ctx, repository.KeySettings, []byte(`{not json`)))
	repo := kv.NewSettingsRepository(s.store, models.DefaultSettings())

	_, err := repo.Load(s.ctx)
	s.Assert().Error(err)
}

func (s *RepositorySuite) TestMistakes_SeedsEmptyOnMiss() {
	repo := kv.NewMistakeRepository(s.store)

	entries, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Empty(entries)
	s.Assert().Equal(`[]`, s.raw(repository.KeyMistakes))
}

func (s *RepositorySuite) TestMistakes_SaveThenLoad() {
	repo := kv.NewMistakeRepository(s.store)
	created := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	want := []models.MistakeEntry{
		{Kana: models.KanaItem{Kana: "あ", Romaji: "a"}, ConsecutiveCorrect: 1, CreatedAt: created},
		{Kana: models.KanaItem{Kana: "キャ", Romaji: "kya"}, ConsecutiveCorrect: 0, CreatedAt: created},
	}

	s.Require().NoError(repo.Save(s.ctx, want))

	got, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(want, got)
}

func (s *RepositorySuite) TestMistakes_SaveNilWritesEmptyArray() {
	repo := kv.NewMistakeRepository(s.store)

	s.Require().NoError(repo.Save(s.ctx, nil))
	s.Assert().Equal(`[]`, s.raw(repository.KeyMistakes))
}

func (s *RepositorySuite) TestMistakes_ExtensionLayout() {
	s.Require().NoError(s.store.Set(s.ctx, repository.KeyMistakes, []byte(
		`[{"kana":"か","romaji":"ka","correctCount":2},{"kana":"か","romaji":"ka","correctCount":0}]`)))
	repo := kv.NewMistakeRepository(s.store)

	got, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Assert().Equal(models.KanaItem{Kana: "か", Romaji: "ka"}, got[0].Kana)
	s.Assert().Equal(2, got[0].ConsecutiveCorrect)
}

func (s *RepositorySuite) TestMistakes_MigratesLegacyKey() {
	s.Require().NoError(s.store.Set(s.ctx, repository.KeyLegacyMistakes, []byte(
		`[{"kana":{"hiragana":"し","katakana":"シ","romaji":"shi"},"correctCount":1,"timestamp":1700000000000}]`)))
	repo := kv.NewMistakeRepository(s.store)

	got, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Assert().Equal(models.KanaItem{Kana: "し", Romaji: "shi"}, got[0].Kana)
	s.Assert().Equal(1, got[0].ConsecutiveCorrect)
	s.Assert().Equal(time.UnixMilli(1700000000000).UTC(), got[0].CreatedAt)
	s.Assert().Contains(s.raw(repository.KeyMistakes), `"romaji":"shi"`)
}

func (s *RepositorySuite) TestMistakes_SkipsUnreadableEntries() {
	s.Require().NoError(s.store.Set(s.ctx, repository.KeyMistakes, []byte(
		`[{"kana":42},{"kana":{"kana":"","romaji":"a"}},{"kana":{"kana":"ん","romaji":"n"}}]`)))
	repo := kv.NewMistakeRepository(s.store)

	got, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Assert().Equal("n", got[0].Kana.Romaji)
}

func (s *RepositorySuite) TestTestRecords_SeedsEmptyOnMiss() {
	repo := kv.NewTestRecordRepository(s.store)

	records, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Empty(records)
	s.Assert().Equal(`[]`, s.raw(repository.KeyTestRecords))
}

func (s *RepositorySuite) TestTestRecords_AssignsMissingIDs() {
	s.Require().NoError(s.store.Set(s.ctx, repository.KeyLegacyTestRecords, []byte(
		`[{"date":"2024-01-02T03:04:05Z","accuracy":80,"duration":42}]`)))
	repo := kv.NewTestRecordRepository(s.store)

	records, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Assert().NotEmpty(records[0].ID)
	s.Assert().Equal(80.0, records[0].Accuracy)
	s.Assert().Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), records[0].Date)

	again, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(records[0].ID, again[0].ID, "migrated IDs must be persisted")
}

func (s *RepositorySuite) TestTestRecords_MigratesExtensionTimestamp() {
	s.Require().NoError(s.store.Set(s.ctx, repository.KeyLegacyTestRecords, []byte(
		`[{"accuracy":80,"duration":42,"timestamp":1700000000000}]`)))
	repo := kv.NewTestRecordRepository(s.store)

	records, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Assert().Equal(time.UnixMilli(1700000000000).UTC(), records[0].Date)
	s.Assert().False(records[0].Date.IsZero())
	s.Assert().Contains(s.raw(repository.KeyTestRecords), `"date":"2023-11-14T22:13:20Z"`)
}

func (s *RepositorySuite) TestTestRecords_MixedDateFormats() {
	s.Require().NoError(s.store.Set(s.ctx, repository.KeyTestRecords, []byte(
		`[{"id":"ms","date":1700000000000,"accuracy":50},`+
			`{"id":"str","date":"2024-01-02T03:04:05Z","accuracy":90},`+
			`{"id":"bad","date":{"nope":true},"accuracy":10},`+
			`{"id":"worse","date":"yesterday","accuracy":20}]`)))
	repo := kv.NewTestRecordRepository(s.store)

	records, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Assert().Equal("ms", records[0].ID)
	s.Assert().Equal(time.UnixMilli(1700000000000).UTC(), records[0].Date)
	s.Assert().Equal("str", records[1].ID)
	s.Assert().Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), records[1].Date)
	s.Assert().NotContains(s.raw(repository.KeyTestRecords), `"bad"`)
}

func (s *RepositorySuite) TestTestRecords_PersistsIDsForCurrentKey() {
	s.Require().NoError(s.store.Set(s.ctx, repository.KeyTestRecords, []byte(
		`[{"date":"2024-01-02T03:04:05Z","accuracy":80,"duration":42,"total":5,"correct":4}]`)))
	repo := kv.NewTestRecordRepository(s.store)

	first, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(first, 1)
	s.Require().NotEmpty(first[0].ID)

	second, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(second, 1)
	s.Assert().Equal(first[0].ID, second[0].ID)
	s.Assert().Contains(s.raw(repository.KeyTestRecords), first[0].ID)
}

func (s *RepositorySuite) TestTestRecords_SaveThenLoad() {
	repo := kv.NewTestRecordRepository(s.store)
	want := []models.TestRecord{{ID: "r1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Accuracy: 50, Duration: 10, Total: 4, Correct: 2}}

	s.Require().NoError(repo.Save(s.ctx, want))

	got, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(want, got)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func TestSettings_StoreFailure(t *testing.T) {
	store := new(mocks.MockKeyValueStore)
	boom := errors.New("disk full")
	store.On("Get", mock.Anything, repository.KeySettings).Return(nil, boom)
	store.On("Set", mock.Anything, repository.KeySettings, mock.Anything).Return(boom)

	repo := kv.NewSettingsRepository(store, models.DefaultSettings())

	_, err := repo.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if err := repo.Save(context.Background(), models.DefaultSettings()); !errors.Is(err, boom) {
		t.Fatalf("expected store error on save, got %v", err)
	}
	store.AssertExpectations(t)
}

func TestSettings_SeedFailureStillReturnsDefaults(t *testing.T) {
	store := new(mocks.MockKeyValueStore)
	store.On("Get", mock.Anything, repository.KeySettings).Return(nil, storage.ErrNotFound)
	store.On("Set", mock.Anything, repository.KeySettings, mock.Anything).Return(errors.New("read-only"))

	repo := kv.NewSettingsRepository(store, models.DefaultSettings())

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != models.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}
