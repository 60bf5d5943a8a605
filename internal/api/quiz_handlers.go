package api

import (
	"net/http"

	"github.com/vytor/kanaflash/internal/services"
)

func (s *Server) handleQuizOptions(w http.ResponseWriter, r *http.Request) {
	var req services.OptionsRequest
	if err := decodeJSON(r, &req, false); err != nil {
		handleError(w, r, err)
		return
	}

	options, err := s.QuizService.Options(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, options)
}

func (s *Server) handleBuildTest(w http.ResponseWriter, r *http.Request) {
	var req services.TestRequest
	if err := decodeJSON(r, &req, true); err != nil {
		handleError(w, r, err)
		return
	}

	test, err := s.QuizService.BuildTest(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, test)
}

func (s *Server) handleGradeTest(w http.ResponseWriter, r *http.Request) {
	var req services.GradeRequest
	if err := decodeJSON(r, &req, false); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.QuizService.Grade(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	status := http.StatusOK
	if result.Record != nil {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, result)
}
