package api

import (
	"net/http"

	"github.com/vytor/kanaflash/internal/errors"
	"github.com/vytor/kanaflash/internal/logger"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr := errors.AsAppError(err)

	// Log based on status code
	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	writeJSON(w, r, appErr.Status, errorBody{Error: errorDetail{Code: appErr.Code, Message: appErr.Message}})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	handleError(w, r, errors.NewNotFoundError("route", r.Method+" "+r.URL.Path))
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	handleError(w, r, &errors.AppError{
		Code:    errors.ErrCodeBadRequest,
		Message: "method not allowed",
		Status:  http.StatusMethodNotAllowed,
	})
}
