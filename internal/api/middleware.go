package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vytor/kanaflash/internal/errors"
	"github.com/vytor/kanaflash/internal/logger"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// loggingMiddleware tags every request with an ID and logs its outcome with
// the matched route and the kana it targeted.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		log := logger.Default().WithPrefix("http").WithFields(map[string]any{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
		})
		r = r.WithContext(logger.NewContext(r.Context(), log))

		w.Header().Set("X-Request-ID", requestID)
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		fields := routeFields(r)
		fields["status"] = wrapped.status
		fields["size"] = wrapped.size
		fields["duration_ms"] = time.Since(start).Milliseconds()
		log = log.WithFields(fields)

		switch {
		case wrapped.status >= 500:
			log.Error("%s failed", r.Method)
		case wrapped.status >= 400:
			log.Warn("%s rejected", r.Method)
		default:
			log.Info("%s served", r.Method)
		}
	})
}

// routeFields reads the chi route pattern and the romaji, record reference
// and kana query a request was routed with. Call it after routing.
func routeFields(r *http.Request) map[string]any {
	fields := map[string]any{}
	if kana := r.URL.Query().Get("kana"); kana != "" {
		fields["kana"] = kana
	}
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return fields
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		fields["route"] = pattern
	}
	if romaji := rctx.URLParam("romaji"); romaji != "" {
		fields["romaji"] = romaji
	}
	if ref := rctx.URLParam("ref"); ref != "" {
		fields["record"] = ref
	}
	return fields
}

// recoveryMiddleware recovers from panics and logs them.
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(r.Context()).WithFields(routeFields(r)).Error("panic recovered: %v", rec)
				handleError(w, r, errors.NewInternalError(nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// securityHeadersMiddleware adds security headers to responses.
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// timeoutMiddleware wraps a handler with a timeout.
func timeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, `{"error":{"code":"UNAVAILABLE","message":"request timeout"}}`)
	}
}
