package web

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"criclite/internal/domain"
	"criclite/internal/scheduler"
	"criclite/internal/view"
)

type nowFunc func() time.Time

// SnapshotReader is the read-only contract the page layer has on the cache.
type SnapshotReader interface {
	Read() (domain.Snapshot, bool)
}

// Config carries the handful of settings the page layer needs.
type Config struct {
	DefaultTheme string
	// StaleAfter is the snapshot age beyond which the page shows the
	// stale notice (idle interval plus the configured margin).
	StaleAfter time.Duration
	// RefreshSeconds drives the HTML auto-refresh meta tag.
	RefreshSeconds int
}

// Handler serves the scoreboard pages and the JSON API over the cached
// snapshot. It never blocks on a refresh; reads always return the most
// recently completed snapshot.
type Handler struct {
	store    SnapshotReader
	statusFn func() scheduler.Status
	logger   *slog.Logger
	cfg      Config
	now      nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(store SnapshotReader, statusFn func() scheduler.Status, logger *slog.Logger, cfg Config) *Handler {
	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = defaultTheme
	}
	if cfg.RefreshSeconds <= 0 {
		cfg.RefreshSeconds = 120
	}
	return &Handler{
		store:    store,
		statusFn: statusFn,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Index serves the scoreboard: plain text for terminal clients, HTML for
// browsers.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if wantsPlainText(r) {
		h.Plain(w, r)
		return
	}
	h.renderHTML(w, r)
}

// Plain always serves the text rendering, regardless of client. The
// before-first-snapshot state is a normal page, not an error; /ready carries
// the probe signal.
func (h *Handler) Plain(w http.ResponseWriter, r *http.Request) {
	page := h.buildPage()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(page.Text())); err != nil {
		logError(r, h.logger, "write text page", err)
	}
}

func (h *Handler) renderHTML(w http.ResponseWriter, r *http.Request) {
	model := htmlModel{
		Page:           h.buildPage(),
		Theme:          h.themeFor(r),
		RefreshSeconds: h.cfg.RefreshSeconds,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, model); err != nil {
		logError(r, h.logger, "render html page", err)
	}
}

// Matches serves the JSON snapshot plus the freshness indicator.
func (h *Handler) Matches(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.store.Read()
	if !ok {
		writeJSON(w, http.StatusOK, matchesResponse{Matches: []domain.Match{}}, h.logger)
		return
	}

	age := snap.Age(h.now())
	writeJSON(w, http.StatusOK, matchesResponse{
		Matches:     snap.Matches,
		LastUpdated: &snap.LastUpdated,
		AgeSeconds:  int(age / time.Second),
		Stale:       h.cfg.StaleAfter > 0 && age > h.cfg.StaleAfter,
	}, h.logger)
}

type matchesResponse struct {
	Matches     []domain.Match `json:"matches"`
	LastUpdated *time.Time     `json:"last_updated,omitempty"`
	AgeSeconds  int            `json:"age_seconds"`
	Stale       bool           `json:"stale"`
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: 503 until a snapshot exists (a warm
// start counts), with the refresh loop's status in the payload so a dead API
// key shows up in probe output.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{}
	if h.statusFn != nil {
		status := h.statusFn()
		body["consecutive_failures"] = status.ConsecutiveFailures
		if status.LastError != "" {
			body["last_error"] = status.LastError
			body["last_error_kind"] = status.LastErrorKind
		}
	}

	if _, ok := h.store.Read(); !ok {
		body["status"] = "waiting for first snapshot"
		writeJSON(w, http.StatusServiceUnavailable, body, h.logger)
		return
	}
	body["status"] = "ready"
	writeJSON(w, http.StatusOK, body, h.logger)
}

func (h *Handler) buildPage() view.Page {
	snap, ok := h.store.Read()
	return view.BuildPage(snap, ok, h.now(), h.cfg.StaleAfter)
}

// wantsPlainText sniffs terminal clients: curl and wget never send a
// text/html Accept preference, and both announce themselves in the UA.
func wantsPlainText(r *http.Request) bool {
	ua := strings.ToLower(r.UserAgent())
	if strings.Contains(ua, "curl") || strings.Contains(ua, "wget") || strings.Contains(ua, "httpie") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/plain") && !strings.Contains(accept, "text/html")
}
