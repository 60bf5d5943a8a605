// Package session holds the in-memory snapshot of one learner's data: the
// settings, the mistake collection and the test records. Services share a
// single State and mutate it only through Update, which serializes writers
// so that read-modify-persist sequences never interleave.
package session

import (
	"context"
	"sync"

	"github.com/vytor/kanaflash/internal/logger"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/vytor/kanaflash/internal/repository"
)

// Tx is the mutable view handed to Update. Assign new slices rather than
// editing elements in place; View hands out copies of these fields.
type Tx struct {
	Settings models.Settings
	Mistakes []models.MistakeEntry
	Records  []models.TestRecord
}

type State struct {
	mu sync.Mutex
	tx Tx
}

// New returns a State holding the given values.
func New(settings models.Settings, mistakes []models.MistakeEntry, records []models.TestRecord) *State {
	return &State{tx: Tx{Settings: settings, Mistakes: mistakes, Records: records}}
}

// Load reads every collection from its repository.
func Load(ctx context.Context, settings repository.SettingsRepository, mistakes repository.MistakeRepository, records repository.TestRecordRepository) (*State, error) {
	log := logger.FromContext(ctx).WithPrefix("session")

	s, err := settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	m, err := mistakes.Load(ctx)
	if err != nil {
		return nil, err
	}
	r, err := records.Load(ctx)
	if err != nil {
		return nil, err
	}

	log.Info("session loaded: %d mistakes, %d test records", len(m), len(r))
	return New(s, m, r), nil
}

// Update runs fn with exclusive access to the state and keeps whatever fn
// leaves in tx.
func (s *State) Update(fn func(tx *Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.tx)
}

// View returns a copy of the current state.
func (s *State) View() Tx {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := Tx{Settings: s.tx.Settings}
	out.Mistakes = append([]models.MistakeEntry{}, s.tx.Mistakes...)
	out.Records = append([]models.TestRecord{}, s.tx.Records...)
	return out
}

func (s *State) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx.Settings
}
