package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/kanaflash/internal/logger"
)

type prefetchRequest struct {
	Romaji []string `json:"romaji"`
}

func (s *Server) handleAudioClip(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	clip, err := s.AudioService.Clip(r.Context(), chi.URLParam(r, "romaji"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", clip.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(clip.Data)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Audio-Source", clip.Source)
	if _, err := w.Write(clip.Data); err != nil {
		log.Warn("failed to send clip: %v", err)
	}
}

// handlePlayAudio always answers 200; playback failures are in the body.
func (s *Server) handlePlayAudio(w http.ResponseWriter, r *http.Request) {
	result := s.AudioService.Play(r.Context(), chi.URLParam(r, "romaji"))
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handlePrefetchAudio(w http.ResponseWriter, r *http.Request) {
	var req prefetchRequest
	if err := decodeJSON(r, &req, true); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.AudioService.Prefetch(r.Context(), req.Romaji)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusAccepted, result)
}
