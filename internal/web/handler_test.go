package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"criclite/internal/domain"
	"criclite/internal/scheduler"
	"criclite/internal/teststubs"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seededStore(t *testing.T, matches ...domain.Match) *teststubs.StubSnapshotStore {
	t.Helper()
	store := &teststubs.StubSnapshotStore{}
	store.Seed(domain.Snapshot{
		Matches:     matches,
		LastUpdated: time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC),
	})
	return store
}

func newTestHandler(store SnapshotReader, statusFn func() scheduler.Status) *Handler {
	h := NewHandler(store, statusFn, discardLogger(), Config{StaleAfter: 15 * time.Minute})
	h.now = func() time.Time { return time.Date(2025, 5, 10, 12, 2, 0, 0, time.UTC) }
	return h
}

func liveMatch() domain.Match {
	return domain.Match{
		ID:         "m1",
		Tournament: "Indian Premier League",
		Format:     "T20",
		Teams:      [2]string{"Chennai Super Kings", "Mumbai Indians"},
		Scores:     [2]string{"182/6 (20 ov)", "94/3 (11.2 ov)"},
		Status:     domain.StatusLive,
		InPlay:     true,
		StatusNote: "Mumbai Indians need 89 runs in 52 balls",
	}
}

func TestPlainServesTextPage(t *testing.T) {
	h := newTestHandler(seededStore(t, liveMatch()), nil)

	rec := httptest.NewRecorder()
	h.Plain(rec, httptest.NewRequest(http.MethodGet, "/plain", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected text/plain content type, got %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "CRICLITE - LIVE CRICKET SCORES") {
		t.Fatalf("missing title in body:\n%s", body)
	}
	if !strings.Contains(body, "Chennai Super Kings") {
		t.Fatalf("missing team in body:\n%s", body)
	}
	if !strings.Contains(body, "Updated 2 minutes ago") {
		t.Fatalf("missing freshness line in body:\n%s", body)
	}
}

func TestPlainEmptyCacheServesNoticeNotError(t *testing.T) {
	h := newTestHandler(&teststubs.StubSnapshotStore{}, nil)

	rec := httptest.NewRecorder()
	h.Plain(rec, httptest.NewRequest(http.MethodGet, "/plain", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for the no-data page, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No data available yet") {
		t.Fatalf("missing no-data notice:\n%s", rec.Body.String())
	}
}

func TestIndexContentNegotiation(t *testing.T) {
	h := newTestHandler(seededStore(t, liveMatch()), nil)

	tests := []struct {
		name      string
		userAgent string
		accept    string
		wantType  string
	}{
		{"curl gets text", "curl/8.4.0", "*/*", "text/plain"},
		{"wget gets text", "Wget/1.21", "*/*", "text/plain"},
		{"browser gets html", "Mozilla/5.0", "text/html,application/xhtml+xml", "text/html"},
		{"plain accept gets text", "SomeClient/1.0", "text/plain", "text/plain"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("User-Agent", tc.userAgent)
			req.Header.Set("Accept", tc.accept)

			rec := httptest.NewRecorder()
			h.Index(rec, req)

			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, tc.wantType) {
				t.Fatalf("expected %s, got %q", tc.wantType, ct)
			}
		})
	}
}

func TestIndexHTMLContainsScoreboard(t *testing.T) {
	h := newTestHandler(seededStore(t, liveMatch()), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	rec := httptest.NewRecorder()
	h.Index(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "<pre>") {
		t.Fatalf("expected preformatted block:\n%s", body)
	}
	if !strings.Contains(body, "Chennai Super Kings") {
		t.Fatalf("missing team in html:\n%s", body)
	}
	if !strings.Contains(body, `http-equiv="refresh" content="120"`) {
		t.Fatalf("missing auto-refresh meta:\n%s", body)
	}
	if !strings.Contains(body, "#1a1a1a") {
		t.Fatalf("expected default dark theme colors:\n%s", body)
	}
}

func TestMatchesJSON(t *testing.T) {
	h := newTestHandler(seededStore(t, liveMatch()), nil)

	rec := httptest.NewRecorder()
	h.Matches(rec, httptest.NewRequest(http.MethodGet, "/api/matches", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Matches     []domain.Match `json:"matches"`
		LastUpdated *time.Time     `json:"last_updated"`
		AgeSeconds  int            `json:"age_seconds"`
		Stale       bool           `json:"stale"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Matches) != 1 || resp.Matches[0].ID != "m1" {
		t.Fatalf("unexpected matches: %+v", resp.Matches)
	}
	if resp.LastUpdated == nil {
		t.Fatal("expected last_updated to be set")
	}
	if resp.AgeSeconds != 120 {
		t.Fatalf("expected age 120s, got %d", resp.AgeSeconds)
	}
	if resp.Stale {
		t.Fatal("snapshot two minutes old should not be stale")
	}
}

func TestMatchesJSONStaleFlag(t *testing.T) {
	store := seededStore(t, liveMatch())
	h := newTestHandler(store, nil)
	h.now = func() time.Time { return time.Date(2025, 5, 10, 13, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	h.Matches(rec, httptest.NewRequest(http.MethodGet, "/api/matches", nil))

	var resp struct {
		Stale bool `json:"stale"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Stale {
		t.Fatal("hour-old snapshot should be flagged stale")
	}
}

func TestMatchesJSONEmptyCache(t *testing.T) {
	h := newTestHandler(&teststubs.StubSnapshotStore{}, nil)

	rec := httptest.NewRecorder()
	h.Matches(rec, httptest.NewRequest(http.MethodGet, "/api/matches", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"matches":[]`) {
		t.Fatalf("expected empty matches array, got:\n%s", body)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&teststubs.StubSnapshotStore{}, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyBeforeFirstSnapshot(t *testing.T) {
	statusFn := func() scheduler.Status {
		return scheduler.Status{
			ConsecutiveFailures: 3,
			LastError:           "cricapi: api key rejected",
			LastErrorKind:       "auth",
		}
	}
	h := newTestHandler(&teststubs.StubSnapshotStore{}, statusFn)

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "api key rejected") {
		t.Fatalf("expected refresh error in payload:\n%s", body)
	}
	if !strings.Contains(body, `"last_error_kind":"auth"`) {
		t.Fatalf("expected error kind in payload:\n%s", body)
	}
}

func TestReadyWithSnapshot(t *testing.T) {
	h := newTestHandler(seededStore(t, liveMatch()), func() scheduler.Status {
		return scheduler.Status{LastSuccess: time.Now()}
	})

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ready"`) {
		t.Fatalf("expected ready status:\n%s", rec.Body.String())
	}
}
