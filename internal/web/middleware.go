package web

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"criclite/internal/logging"
	"criclite/internal/metrics"
)

// LoggingMiddleware attaches a request-scoped logger, logs each request on
// completion, and records HTTP metrics. It sits after chi's RequestID and
// RealIP middleware so both are available here.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder) func(http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			logger := baseLogger.With(
				slog.String(logging.FieldRequestID, chimiddleware.GetReqID(r.Context())),
				slog.String(logging.FieldMethod, r.Method),
				slog.String(logging.FieldPath, r.URL.Path),
				slog.String("client_ip", r.RemoteAddr),
			)
			r = r.WithContext(logging.WithLogger(r.Context(), logger))

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			if recorder != nil {
				recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), ww.Status(), duration)
			}

			logger.Info("request complete",
				slog.Int(logging.FieldStatusCode, ww.Status()),
				slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			)
		})
	}
}

// normalizePath collapses parameterized routes to keep metric cardinality low.
func normalizePath(path string) string {
	if strings.HasPrefix(path, "/theme/") {
		return "/theme/:theme"
	}
	return path
}
