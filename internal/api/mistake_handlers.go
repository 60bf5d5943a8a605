package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/kanaflash/internal/errors"
	"github.com/vytor/kanaflash/internal/mistake"
	"github.com/vytor/kanaflash/internal/models"
)

type mistakeResponse struct {
	Outcome  mistake.Outcome       `json:"outcome"`
	Mistakes []models.MistakeEntry `json:"mistakes"`
}

func (s *Server) handleListMistakes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.MistakeService.List(r.Context()))
}

func (s *Server) handleClearMistakes(w http.ResponseWriter, r *http.Request) {
	s.MistakeService.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecordWrong(w http.ResponseWriter, r *http.Request) {
	s.recordAnswer(w, r, s.MistakeService.RecordWrong)
}

func (s *Server) handleRecordCorrect(w http.ResponseWriter, r *http.Request) {
	s.recordAnswer(w, r, s.MistakeService.RecordCorrect)
}

func (s *Server) recordAnswer(w http.ResponseWriter, r *http.Request, record func(ctx context.Context, k models.KanaItem) (mistake.Outcome, error)) {
	var k models.KanaItem
	if err := decodeJSON(r, &k, false); err != nil {
		handleError(w, r, err)
		return
	}

	outcome, err := record(r.Context(), k)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, mistakeResponse{Outcome: outcome, Mistakes: s.MistakeService.List(r.Context())})
}

// handleRemoveMistake deletes the entry for {romaji} written as ?kana=.
func (s *Server) handleRemoveMistake(w http.ResponseWriter, r *http.Request) {
	k := models.KanaItem{Kana: r.URL.Query().Get("kana"), Romaji: chi.URLParam(r, "romaji")}
	if k.Kana == "" {
		handleError(w, r, errors.NewBadRequestError("kana query parameter is required"))
		return
	}

	outcome, err := s.MistakeService.Remove(r.Context(), k)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, mistakeResponse{Outcome: outcome, Mistakes: s.MistakeService.List(r.Context())})
}
