package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"criclite/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	body := map[string]string{"error": message}
	if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func logError(r *http.Request, fallback *slog.Logger, msg string, err error) {
	logging.Error(logging.FromContext(r.Context(), fallback), msg, err)
}
