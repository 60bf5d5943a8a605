package services

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/kanaflash/internal/errors"
	"github.com/vytor/kanaflash/internal/export"
	"github.com/vytor/kanaflash/internal/logger"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/repository"
	"github.com/vytor/kanaflash/internal/session"
)

// TestRecordService stores finished tests and ranks them
type TestRecordService interface {
	Add(ctx context.Context, record models.TestRecord) (models.TestRecord, error)
	List(ctx context.Context, order models.RecordSort) ([]models.TestRecord, error)
	Delete(ctx context.Context, index int) error
	DeleteByID(ctx context.Context, id string) error
	Clear(ctx context.Context)
	Export(ctx context.Context, order models.RecordSort, w io.Writer) error
}

type testRecordService struct {
	state *session.State
	repo  repository.TestRecordRepository
	now   func() time.Time
}

// NewTestRecordService creates a new TestRecordService
func NewTestRecordService(state *session.State, repo repository.TestRecordRepository) TestRecordService {
	return &testRecordService{state: state, repo: repo, now: time.Now}
}

func (s *testRecordService) Add(ctx context.Context, record models.TestRecord) (models.TestRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("records")

	if record.Total < 0 || record.Correct < 0 || record.Correct > record.Total {
		return models.TestRecord{}, errors.NewValidationError("correct", "must be between 0 and total")
	}
	if record.Accuracy < 0 || record.Accuracy > 100 {
		return models.TestRecord{}, errors.NewValidationError("accuracy", "must be between 0 and 100")
	}
	if record.Duration < 0 {
		return models.TestRecord{}, errors.NewValidationError("duration", "cannot be negative")
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Date.IsZero() {
		record.Date = s.now()
	}

	s.state.Update(func(tx *session.Tx) {
		records := make([]models.TestRecord, 0, len(tx.Records)+1)
		records = append(records, tx.Records...)
		records = append(records, record)
		tx.Records = records
		s.persist(ctx, log, records)
	})
	log.Info("stored test record %s: %d/%d correct", record.ID, record.Correct, record.Total)
	return record, nil
}

// List returns the records sorted as requested. Empty fields default to date
// descending; ties keep storage order.
func (s *testRecordService) List(ctx context.Context, order models.RecordSort) ([]models.TestRecord, error) {
	order, err := normalizeSort(order)
	if err != nil {
		return nil, err
	}
	records := s.state.View().Records
	sortRecords(records, order)
	return records, nil
}

// Delete removes the record at index in storage order.
func (s *testRecordService) Delete(ctx context.Context, index int) error {
	log := logger.FromContext(ctx).WithPrefix("records")

	var found bool
	s.state.Update(func(tx *session.Tx) {
		if index < 0 || index >= len(tx.Records) {
			return
		}
		found = true
		records := make([]models.TestRecord, 0, len(tx.Records)-1)
		records = append(records, tx.Records[:index]...)
		records = append(records, tx.Records[index+1:]...)
		tx.Records = records
		s.persist(ctx, log, records)
	})
	if !found {
		return errors.NewNotFoundError("test record", index)
	}
	log.Debug("deleted test record at index %d", index)
	return nil
}

func (s *testRecordService) DeleteByID(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("records")

	var found bool
	s.state.Update(func(tx *session.Tx) {
		records := make([]models.TestRecord, 0, len(tx.Records))
		for _, r := range tx.Records {
			if r.ID == id {
				found = true
				continue
			}
			records = append(records, r)
		}
		if !found {
			return
		}
		tx.Records = records
		s.persist(ctx, log, records)
	})
	if !found {
		return errors.NewNotFoundError("test record", id)
	}
	log.Debug("deleted test record %s", id)
	return nil
}

func (s *testRecordService) Clear(ctx context.Context) {
	log := logger.FromContext(ctx).WithPrefix("records")
	s.state.Update(func(tx *session.Tx) {
		log.Info("clearing %d test records", len(tx.Records))
		tx.Records = []models.TestRecord{}
		s.persist(ctx, log, tx.Records)
	})
}

func (s *testRecordService) Export(ctx context.Context, order models.RecordSort, w io.Writer) error {
	log := logger.FromContext(ctx).WithPrefix("records")

	records, err := s.List(ctx, order)
	if err != nil {
		return err
	}
	if err := export.WriteRecords(w, records); err != nil {
		log.Error("failed to export records: %v", err)
		return errors.NewInternalError(err)
	}
	log.Debug("exported %d records", len(records))
	return nil
}

func (s *testRecordService) persist(ctx context.Context, log *logger.Logger, records []models.TestRecord) {
	if err := s.repo.Save(ctx, records); err != nil {
		log.Error("failed to persist test records: %v", err)
	}
}

func normalizeSort(order models.RecordSort) (models.RecordSort, error) {
	if order.By == "" {
		order.By = models.SortByDate
	}
	if order.Order == "" {
		order.Order = models.SortDesc
	}
	switch order.By {
	case models.SortByDate, models.SortByAccuracy, models.SortByDuration:
	default:
		return order, errors.NewValidationError("sortBy", "must be date, accuracy or duration")
	}
	if order.Order != models.SortAsc && order.Order != models.SortDesc {
		return order, errors.NewValidationError("order", "must be asc or desc")
	}
	return order, nil
}

func sortRecords(records []models.TestRecord, order models.RecordSort) {
	less := func(a, b models.TestRecord) bool {
		switch order.By {
		case models.SortByAccuracy:
			return a.Accuracy < b.Accuracy
		case models.SortByDuration:
			return a.Duration < b.Duration
		default:
			return a.Date.Before(b.Date)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		if order.Order == models.SortAsc {
			return less(records[i], records[j])
		}
		return less(records[j], records[i])
	})
}
