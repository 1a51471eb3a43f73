package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"criclite/internal/metrics"
)

// NewRouter registers the scoreboard, theme, API, and probe routes.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(LoggingMiddleware(logger, recorder))

	r.Get("/", handler.Index)
	r.Get("/plain", handler.Plain)
	r.Get("/theme/{theme}", handler.SetTheme)
	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		api.Get("/matches", handler.Matches)
	})

	return r
}
