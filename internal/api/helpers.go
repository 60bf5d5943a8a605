package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/vytor/kanaflash/internal/errors"
	"github.com/vytor/kanaflash/internal/logger"
)

const maxBodySize = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON reads the request body into v. An empty body leaves v untouched
// when allowEmpty is set.
func decodeJSON(r *http.Request, v any, allowEmpty bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if err == io.EOF && allowEmpty {
			return nil
		}
		return errors.NewBadRequestError("invalid JSON body: " + err.Error())
	}
	return nil
}
