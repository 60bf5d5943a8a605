package api

import (
	"net/http"

	"github.com/vytor/kanaflash/internal/logger"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.SettingsService.Get(r.Context()))
}

// handleSaveSettings replaces the settings. Fields missing from the body keep
// their current value.
func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	settings := s.SettingsService.Get(r.Context())
	if err := decodeJSON(r, &settings, false); err != nil {
		handleError(w, r, err)
		return
	}

	saved, err := s.SettingsService.Save(r.Context(), settings)
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Info("settings updated")
	writeJSON(w, r, http.StatusOK, saved)
}

