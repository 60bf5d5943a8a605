package services

import (
	"context"
	"time"

	"github.com/vytor/kanaflash/internal/errors"
	"github.com/vytor/kanaflash/internal/kana"
	"github.com/vytor/kanaflash/internal/logger"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/quiz"
	"github.com/vytor/kanaflash/internal/session"
)

// MaxTestQuestions bounds TestRequest.Count.
const MaxTestQuestions = 200

// Selection picks part of the kana table. Empty fields fall back to the
// current settings.
type Selection struct {
	KanaType     string `json:"kanaType,omitempty"`
	KanaCategory string `json:"kanaCategory,omitempty"`
}

type OptionsRequest struct {
	Correct models.KanaItem   `json:"correct"`
	Pool    []models.KanaItem `json:"pool,omitempty"`
	Count   int               `json:"count,omitempty"`
	Selection
}

type TestRequest struct {
	Count        int  `json:"count,omitempty"`
	OptionsCount int  `json:"optionsCount,omitempty"`
	Review       bool `json:"review,omitempty"`
	Selection
}

// Test is a generated set of questions. Review tests are drawn from the
// mistake collection.
type Test struct {
	Questions    []models.Question `json:"questions"`
	Review       bool              `json:"review"`
	KanaType     string            `json:"kanaType"`
	KanaCategory string            `json:"kanaCategory"`
	CreatedAt    time.Time         `json:"createdAt"`
}

type GradeRequest struct {
	Answers  []models.Answer `json:"answers"`
	Duration float64         `json:"duration"`
	Review   bool            `json:"review,omitempty"`
	Selection
}

// GradeResult holds the stored record (nil for review tests) and what each
// answer did to the mistake collection.
type GradeResult struct {
	Record   *models.TestRecord `json:"record,omitempty"`
	Total    int                `json:"total"`
	Correct  int                `json:"correct"`
	Accuracy float64            `json:"accuracy"`
	Outcomes []AnswerOutcome    `json:"outcomes"`
}

// Playlist is the listening order for the audio player.
type Playlist struct {
	Items    []models.KanaItem `json:"items"`
	Order    string            `json:"order"`
	Interval int               `json:"interval"`
}

// QuizService generates option sets and tests and grades answers
type QuizService interface {
	Kana(ctx context.Context, sel Selection) ([]models.KanaItem, error)
	Options(ctx context.Context, req OptionsRequest) ([]models.KanaItem, error)
	BuildTest(ctx context.Context, req TestRequest) (*Test, error)
	Grade(ctx context.Context, req GradeRequest) (*GradeResult, error)
	Playlist(ctx context.Context, sel Selection) (*Playlist, error)
}

type quizService struct {
	state    *session.State
	gen      *quiz.Generator
	mistakes MistakeService
	records  TestRecordService
	now      func() time.Time
}

// NewQuizService creates a new QuizService
func NewQuizService(state *session.State, gen *quiz.Generator, mistakes MistakeService, records TestRecordService) QuizService {
	return &quizService{
		state:    state,
		gen:      gen,
		mistakes: mistakes,
		records:  records,
		now:      time.Now,
	}
}

func (s *quizService) Kana(ctx context.Context, sel Selection) ([]models.KanaItem, error) {
	sel, err := s.resolve(sel)
	if err != nil {
		return nil, err
	}
	return kana.List(sel.KanaType, sel.KanaCategory), nil
}

func (s *quizService) Options(ctx context.Context, req OptionsRequest) ([]models.KanaItem, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz")

	if req.Correct.Romaji == "" {
		return nil, errors.NewValidationError("correct", "romaji is required")
	}
	if req.Count < 0 {
		return nil, errors.NewValidationError("count", "cannot be negative")
	}

	pool := req.Pool
	if len(pool) == 0 {
		var err error
		if pool, err = s.Kana(ctx, req.Selection); err != nil {
			return nil, err
		}
	}

	options := s.gen.Options(req.Correct, pool, req.Count)
	log.Debug("generated %d options for %s from a pool of %d", len(options), req.Correct, len(pool))
	return options, nil
}

func (s *quizService) BuildTest(ctx context.Context, req TestRequest) (*Test, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz")

	if req.Count < 0 || req.Count > MaxTestQuestions {
		return nil, errors.NewValidationError("count", "must be between 0 and 200")
	}
	if req.OptionsCount < 0 {
		return nil, errors.NewValidationError("optionsCount", "cannot be negative")
	}
	sel, err := s.resolve(req.Selection)
	if err != nil {
		return nil, err
	}

	var questions []models.Question
	if req.Review {
		entries := s.mistakes.List(ctx)
		if len(entries) == 0 {
			return nil, errors.NewBadRequestError("no mistakes to review")
		}
		picked := make([]models.KanaItem, 0, len(entries))
		for _, e := range entries {
			picked = append(picked, e.Kana)
		}
		picked = s.gen.Shuffle(picked)
		if req.Count > 0 && req.Count < len(picked) {
			picked = picked[:req.Count]
		}
		// Mistakes can come from any script, so distractors do too.
		pool := kana.All()
		for _, k := range picked {
			questions = append(questions, models.Question{
				Kana:    k,
				Options: s.gen.Options(k, pool, req.OptionsCount),
			})
		}
	} else {
		questions = s.gen.BuildTest(kana.List(sel.KanaType, sel.KanaCategory), req.Count, req.OptionsCount)
	}

	log.Info("built test: %d questions, review=%t", len(questions), req.Review)
	return &Test{
		Questions:    questions,
		Review:       req.Review,
		KanaType:     sel.KanaType,
		KanaCategory: sel.KanaCategory,
		CreatedAt:    s.now(),
	}, nil
}

// Grade scores the answers, updates the mistake collection and, unless the
// test was a review, stores a test record.
func (s *quizService) Grade(ctx context.Context, req GradeRequest) (*GradeResult, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz")

	if len(req.Answers) == 0 {
		return nil, errors.NewValidationError("answers", "cannot be empty")
	}
	if req.Duration < 0 {
		return nil, errors.NewValidationError("duration", "cannot be negative")
	}
	sel, err := s.resolve(req.Selection)
	if err != nil {
		return nil, err
	}

	outcomes, err := s.mistakes.ApplyAnswers(ctx, req.Answers)
	if err != nil {
		return nil, err
	}

	record := quiz.Grade(req.Answers, time.Duration(req.Duration*float64(time.Second)), s.now())
	record.KanaType = sel.KanaType
	record.KanaCategory = sel.KanaCategory

	result := &GradeResult{
		Total:    record.Total,
		Correct:  record.Correct,
		Accuracy: record.Accuracy,
		Outcomes: outcomes,
	}
	if !req.Review {
		stored, err := s.records.Add(ctx, record)
		if err != nil {
			return nil, err
		}
		result.Record = &stored
	}

	log.Info("graded test: %d/%d correct (%.1f%%), review=%t", record.Correct, record.Total, record.Accuracy, req.Review)
	return result, nil
}

func (s *quizService) Playlist(ctx context.Context, sel Selection) (*Playlist, error) {
	settings := s.state.Settings()
	sel, err := s.resolve(sel)
	if err != nil {
		return nil, err
	}
	items := kana.List(sel.KanaType, sel.KanaCategory)
	return &Playlist{
		Items:    s.gen.Playlist(items, settings.PlayOrder),
		Order:    settings.PlayOrder,
		Interval: settings.PlayInterval,
	}, nil
}

func (s *quizService) resolve(sel Selection) (Selection, error) {
	settings := s.state.Settings()
	if sel.KanaType == "" {
		sel.KanaType = settings.KanaType
	}
	if sel.KanaCategory == "" {
		sel.KanaCategory = settings.KanaCategory
	}
	if !kana.ValidType(sel.KanaType) {
		return sel, errors.NewValidationError("kanaType", "must be hiragana, katakana or both")
	}
	if !kana.ValidCategory(sel.KanaCategory) {
		return sel, errors.NewValidationError("kanaCategory", "must be seion, dakuon, youon or all")
	}
	return sel, nil
}
