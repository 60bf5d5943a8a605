package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const requestTimeout = 30 * time.Second

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleMethodNotAllowed)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(timeoutMiddleware(requestTimeout))

		r.Get("/kana", s.handleKana)
		r.Get("/playlist", s.handlePlaylist)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleSaveSettings)

		r.Get("/mistakes", s.handleListMistakes)
		r.Delete("/mistakes", s.handleClearMistakes)
		r.Post("/mistakes/wrong", s.handleRecordWrong)
		r.Post("/mistakes/correct", s.handleRecordCorrect)
		r.Delete("/mistakes/{romaji}", s.handleRemoveMistake)

		r.Post("/quiz/options", s.handleQuizOptions)
		r.Post("/tests", s.handleBuildTest)
		r.Post("/tests/grade", s.handleGradeTest)

		r.Get("/records", s.handleListRecords)
		r.Delete("/records", s.handleClearRecords)
		r.Get("/records/export.xlsx", s.handleExportRecords)
		r.Delete("/records/{ref}", s.handleDeleteRecord)

		r.Get("/audio/{romaji}", s.handleAudioClip)
		r.Post("/audio/{romaji}/play", s.handlePlayAudio)
		r.Post("/audio/prefetch", s.handlePrefetchAudio)
	})
	return r
}
