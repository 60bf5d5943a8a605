package kv

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/kanaflash/internal/logger"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/repository"
	"github.com/vytor/kanaflash/internal/storage"
)

type testRecordRepository struct {
	store storage.KeyValueStore
}

// NewTestRecordRepository returns a TestRecordRepository stored under the
// "testRecords" key, falling back to the legacy "testResults" key.
func NewTestRecordRepository(store storage.KeyValueStore) repository.TestRecordRepository {
	return &testRecordRepository{store: store}
}

func (r *testRecordRepository) Load(ctx context.Context) ([]models.TestRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("test_record_repo")

	var stored []storedRecord
	found, err := getJSON(ctx, r.store, repository.KeyTestRecords, &stored)
	if err != nil {
		log.Error("failed to load test records: %v", err)
		return nil, err
	}
	if found {
		records, changed := decodeRecords(stored)
		if changed {
			log.Info("normalized %d stored test records", len(records))
			seed(ctx, r.store, repository.KeyTestRecords, records)
		}
		log.Debug("loaded %d test records", len(records))
		return records, nil
	}

	legacy, err := getJSON(ctx, r.store, repository.KeyLegacyTestRecords, &stored)
	if err != nil {
		log.Error("failed to load legacy test records: %v", err)
		return nil, err
	}
	records, _ := decodeRecords(stored)
	if legacy {
		log.Info("migrating %d test records from %s", len(records), repository.KeyLegacyTestRecords)
	}
	seed(ctx, r.store, repository.KeyTestRecords, records)
	return records, nil
}

func (r *testRecordRepository) Save(ctx context.Context, records []models.TestRecord) error {
	log := logger.FromContext(ctx).WithPrefix("test_record_repo")
	log.Debug("saving %d test records", len(records))

	if records == nil {
		records = []models.TestRecord{}
	}
	if err := setJSON(ctx, r.store, repository.KeyTestRecords, records); err != nil {
		log.Error("failed to save test records: %v", err)
		return err
	}
	return nil
}

// storedRecord accepts the layouts written under the record keys. date is an
// RFC3339 string or epoch milliseconds; the extension wrote only timestamp.
//
//	{"id":"...","date":"2024-01-02T03:04:05Z","accuracy":80,"duration":42}
//	{"date":1700000000000,"accuracy":80,"duration":42}
//	{"accuracy":80,"duration":42,"timestamp":1700000000000}
type storedRecord struct {
	ID           string          `json:"id"`
	Date         json.RawMessage `json:"date"`
	Timestamp    *int64          `json:"timestamp"`
	Accuracy     float64         `json:"accuracy"`
	Duration     float64         `json:"duration"`
	Total        int             `json:"total"`
	Correct      int             `json:"correct"`
	KanaType     string          `json:"kanaType"`
	KanaCategory string          `json:"kanaCategory"`
}

// record converts the stored shape. ok is false when the date cannot be read;
// normalized reports that the stored bytes differ from what Save would write.
func (s storedRecord) record() (rec models.TestRecord, normalized, ok bool) {
	rec = models.TestRecord{
		ID:           s.ID,
		Accuracy:     s.Accuracy,
		Duration:     s.Duration,
		Total:        s.Total,
		Correct:      s.Correct,
		KanaType:     s.KanaType,
		KanaCategory: s.KanaCategory,
	}

	date, isString, ok := parseRecordDate(s.Date)
	if !ok {
		return rec, false, false
	}
	switch {
	case date != nil:
		rec.Date = *date
		normalized = !isString
	case s.Timestamp != nil:
		rec.Date = time.UnixMilli(*s.Timestamp).UTC()
		normalized = true
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
		normalized = true
	}
	return rec, normalized, true
}

// parseRecordDate reads a date that is absent, null, an RFC3339 string or a
// number of epoch milliseconds. date is nil when no date was stored.
func parseRecordDate(raw json.RawMessage) (date *time.Time, isString, ok bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false, true
	}
	var t time.Time
	if err := json.Unmarshal(raw, &t); err == nil {
		return &t, true, true
	}
	var ms float64
	if err := json.Unmarshal(raw, &ms); err == nil {
		t = time.UnixMilli(int64(ms)).UTC()
		return &t, false, true
	}
	return nil, false, false
}

// decodeRecords drops entries it cannot read. changed is true when any entry
// was dropped or rewritten, so the caller can persist the normalized list.
func decodeRecords(stored []storedRecord) (records []models.TestRecord, changed bool) {
	records = make([]models.TestRecord, 0, len(stored))
	for _, s := range stored {
		rec, normalized, ok := s.record()
		if !ok {
			changed = true
			continue
		}
		records = append(records, rec)
		changed = changed || normalized
	}
	return records, changed
}
