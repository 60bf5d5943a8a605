package api

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/kanaflash/internal/export"
	"github.com/vytor/kanaflash/internal/logger"
	"github.com/vytor/kanaflash/internal/models"
)

func sortFromQuery(r *http.Request) models.RecordSort {
	q := r.URL.Query()
	return models.RecordSort{By: q.Get("sortBy"), Order: q.Get("order")}
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.TestRecordService.List(r.Context(), sortFromQuery(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, records)
}

func (s *Server) handleClearRecords(w http.ResponseWriter, r *http.Request) {
	s.TestRecordService.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteRecord deletes by storage index when {ref} is a number and by ID
// otherwise.
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	var err error
	if index, convErr := strconv.Atoi(ref); convErr == nil {
		err = s.TestRecordService.Delete(r.Context(), index)
	} else {
		err = s.TestRecordService.DeleteByID(r.Context(), ref)
	}
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExportRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var buf bytes.Buffer
	if err := s.TestRecordService.Export(r.Context(), sortFromQuery(r), &buf); err != nil {
		handleError(w, r, err)
		return
	}

	name := "kana-records-" + time.Now().Format("20060102") + ".xlsx"
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn("failed to send export: %v", err)
	}
}
