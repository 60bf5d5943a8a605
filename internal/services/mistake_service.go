package services

import (
	"context"
	"time"

	"github.com/vytor/kanaflash/internal/errors"
	"github.com/vytor/kanaflash/internal/kana"
	"github.com/vytor/kanaflash/internal/logger"
	"github.com/vytor/kanaflash/internal/mistake"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/repository"
	"github.com/vytor/kanaflash/internal/session"
)

// AnswerOutcome is what one graded answer did to the mistake collection.
type AnswerOutcome struct {
	Kana    models.KanaItem `json:"kana"`
	Correct bool            `json:"correct"`
	Outcome mistake.Outcome `json:"outcome"`
}

// MistakeService maintains the collection of kana the learner got wrong
type MistakeService interface {
	RecordWrong(ctx context.Context, k models.KanaItem) (mistake.Outcome, error)
	RecordCorrect(ctx context.Context, k models.KanaItem) (mistake.Outcome, error)
	ApplyAnswers(ctx context.Context, answers []models.Answer) ([]AnswerOutcome, error)
	Remove(ctx context.Context, k models.KanaItem) (mistake.Outcome, error)
	Clear(ctx context.Context)
	List(ctx context.Context) []models.MistakeEntry
}

type mistakeService struct {
	state *session.State
	repo  repository.MistakeRepository
	now   func() time.Time
}

// NewMistakeService creates a new MistakeService
func NewMistakeService(state *session.State, repo repository.MistakeRepository) MistakeService {
	return &mistakeService{state: state, repo: repo, now: time.Now}
}

func (s *mistakeService) RecordWrong(ctx context.Context, k models.KanaItem) (mistake.Outcome, error) {
	outcomes, err := s.ApplyAnswers(ctx, []models.Answer{{Kana: k}})
	if err != nil {
		return "", err
	}
	return outcomes[0].Outcome, nil
}

func (s *mistakeService) RecordCorrect(ctx context.Context, k models.KanaItem) (mistake.Outcome, error) {
	outcomes, err := s.ApplyAnswers(ctx, []models.Answer{{Kana: k, Chosen: k}})
	if err != nil {
		return "", err
	}
	return outcomes[0].Outcome, nil
}

// ApplyAnswers feeds each answer to the tracker in order and persists the
// collection once. Wrong answers go through RecordWrong, right ones through
// RecordCorrect.
func (s *mistakeService) ApplyAnswers(ctx context.Context, answers []models.Answer) ([]AnswerOutcome, error) {
	log := logger.FromContext(ctx).WithPrefix("mistakes")

	for i, a := range answers {
		if err := validateKana(a.Kana); err != nil {
			log.Debug("rejecting answer %d: %v", i, err)
			return nil, err
		}
	}

	outcomes := make([]AnswerOutcome, 0, len(answers))
	s.state.Update(func(tx *session.Tx) {
		entries := tx.Mistakes
		threshold := tx.Settings.RequiredCorrectCount
		changed := false
		for _, a := range answers {
			var outcome mistake.Outcome
			if a.Correct() {
				entries, outcome = mistake.RecordCorrect(entries, a.Kana, threshold)
			} else {
				entries, outcome = mistake.RecordWrong(entries, a.Kana, s.now())
			}
			if outcome != mistake.OutcomeMissing {
				changed = true
			}
			log.Debug("%s: %s", a.Kana, outcome)
			outcomes = append(outcomes, AnswerOutcome{Kana: a.Kana, Correct: a.Correct(), Outcome: outcome})
		}
		if !changed {
			return
		}
		tx.Mistakes = entries
		s.persist(ctx, log, entries)
	})
	return outcomes, nil
}

func (s *mistakeService) Remove(ctx context.Context, k models.KanaItem) (mistake.Outcome, error) {
	log := logger.FromContext(ctx).WithPrefix("mistakes")
	if err := validateKana(k); err != nil {
		return "", err
	}

	var outcome mistake.Outcome
	s.state.Update(func(tx *session.Tx) {
		var entries []models.MistakeEntry
		entries, outcome = mistake.Remove(tx.Mistakes, k)
		if outcome == mistake.OutcomeMissing {
			return
		}
		tx.Mistakes = entries
		s.persist(ctx, log, entries)
	})
	log.Debug("remove %s: %s", k, outcome)
	return outcome, nil
}

func (s *mistakeService) Clear(ctx context.Context) {
	log := logger.FromContext(ctx).WithPrefix("mistakes")
	s.state.Update(func(tx *session.Tx) {
		log.Info("clearing %d mistakes", len(tx.Mistakes))
		tx.Mistakes = []models.MistakeEntry{}
		s.persist(ctx, log, tx.Mistakes)
	})
}

func (s *mistakeService) List(ctx context.Context) []models.MistakeEntry {
	return s.state.View().Mistakes
}

func (s *mistakeService) persist(ctx context.Context, log *logger.Logger, entries []models.MistakeEntry) {
	if err := s.repo.Save(ctx, entries); err != nil {
		log.Error("failed to persist mistakes: %v", err)
	}
}

func validateKana(k models.KanaItem) error {
	if k.Kana == "" || k.Romaji == "" {
		return errors.NewValidationError("kana", "kana and romaji are required")
	}
	if _, ok := kana.Lookup(k.Kana, k.Romaji); !ok {
		return errors.NewValidationError("kana", "unknown kana "+k.String())
	}
	return nil
}
