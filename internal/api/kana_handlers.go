package api

import (
	"net/http"

	"github.com/vytor/kanaflash/internal/services"
)

func selectionFromQuery(r *http.Request) services.Selection {
	q := r.URL.Query()
	return services.Selection{KanaType: q.Get("type"), KanaCategory: q.Get("category")}
}

func (s *Server) handleKana(w http.ResponseWriter, r *http.Request) {
	items, err := s.QuizService.Kana(r.Context(), selectionFromQuery(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}

func (s *Server) handlePlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := s.QuizService.Playlist(r.Context(), selectionFromQuery(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, playlist)
}
