package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"criclite/internal/metrics"
	"criclite/internal/teststubs"
)

func TestRouterRoutes(t *testing.T) {
	h := newTestHandler(seededStore(t, liveMatch()), nil)
	router := NewRouter(h, discardLogger(), metrics.NewRecorder())

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"index", http.MethodGet, "/", http.StatusOK},
		{"plain", http.MethodGet, "/plain", http.StatusOK},
		{"api matches", http.MethodGet, "/api/matches", http.StatusOK},
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"ready", http.MethodGet, "/ready", http.StatusOK},
		{"theme", http.MethodGet, "/theme/light", http.StatusSeeOther},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound},
		{"post rejected", http.MethodPost, "/api/matches", http.StatusMethodNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			if rec.Code != tc.wantStatus {
				t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.wantStatus, rec.Code)
			}
		})
	}
}

func TestRouterCORSOnAPI(t *testing.T) {
	h := newTestHandler(seededStore(t, liveMatch()), nil)
	router := NewRouter(h, discardLogger(), metrics.NewRecorder())

	req := httptest.NewRequest(http.MethodGet, "/api/matches", nil)
	req.Header.Set("Origin", "https://example.com")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS header, got %q", got)
	}
}

func TestLoggingMiddlewareRecordsMetrics(t *testing.T) {
	recorder := metrics.NewRecorder()
	h := newTestHandler(seededStore(t, liveMatch()), nil)
	router := NewRouter(h, discardLogger(), recorder)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := recorder.HTTPRequests(); got != 1 {
		t.Fatalf("expected 1 recorded request, got %d", got)
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("/theme/green"); got != "/theme/:theme" {
		t.Fatalf("expected /theme/:theme, got %q", got)
	}
	if got := normalizePath("/api/matches"); got != "/api/matches" {
		t.Fatalf("expected path unchanged, got %q", got)
	}
}

func TestEmptyCacheNeverPanicsAcrossRoutes(t *testing.T) {
	h := newTestHandler(&teststubs.StubSnapshotStore{}, nil)
	router := NewRouter(h, discardLogger(), metrics.NewRecorder())

	for _, path := range []string{"/", "/plain", "/api/matches", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("User-Agent", "Mozilla/5.0")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code >= http.StatusInternalServerError {
			t.Fatalf("%s: unexpected server error %d", path, rec.Code)
		}
	}
}

func TestIndexBodyUsesStrictASCIIBoxes(t *testing.T) {
	h := newTestHandler(seededStore(t, liveMatch()), nil)

	req := httptest.NewRequest(http.MethodGet, "/plain", nil)
	rec := httptest.NewRecorder()
	h.Plain(rec, req)

	for _, r := range rec.Body.String() {
		if r > 126 {
			t.Fatalf("non-ASCII rune %q in plain output", r)
		}
	}
	if !strings.Contains(rec.Body.String(), "+---") {
		t.Fatalf("expected ASCII box borders:\n%s", rec.Body.String())
	}
}
