package api

import (
	"database/sql"

	"github.com/vytor/kanaflash/internal/services"
)

// Server exposes the services over a JSON HTTP API.
type Server struct {
	SettingsService   services.SettingsService
	MistakeService    services.MistakeService
	TestRecordService services.TestRecordService
	QuizService       services.QuizService
	AudioService      services.AudioService
	// DB is checked by the readiness probe; nil for the in-memory backend.
	DB *sql.DB
}
