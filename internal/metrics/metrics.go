package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// refresh cycles, mirroring everything into OpenTelemetry instruments when
// telemetry is enabled. The in-memory side exists so tests can assert on
// counters without scraping an exporter.
type Recorder struct {
	mu            sync.Mutex
	stats         map[string]*providerStats
	refreshCycles int
	refreshErrors int
	lastSnapshot  int
	httpRequests  int
	otel          *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordRefreshCycle tracks one pass of the refresh scheduler.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.refreshCycles++
	if err != nil {
		r.refreshErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefresh(duration, err)
	}
}

// RecordSnapshotSize tracks the match count of the most recent snapshot.
func (r *Recorder) RecordSnapshotSize(count int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.lastSnapshot = count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSnapshotSize(count)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.httpRequests++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// HTTPRequests returns the total HTTP requests recorded.
func (r *Recorder) HTTPRequests() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.httpRequests
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.ProviderSnapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.ProviderSnapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.ProviderSnapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.ProviderSnapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.ProviderSnapshot(provider).LastCallLatency
}

// RefreshCycles returns the total refresh cycles recorded.
func (r *Recorder) RefreshCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshCycles
}

// RefreshErrors returns the total failed refresh cycles recorded.
func (r *Recorder) RefreshErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshErrors
}

// LastSnapshotSize returns the match count of the most recently recorded snapshot.
func (r *Recorder) LastSnapshotSize() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastSnapshot
}

// ProviderSnapshot is a copy of the current stats for one provider.
type ProviderSnapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) ProviderSnapshot(provider string) ProviderSnapshot {
	if r == nil {
		return ProviderSnapshot{}
	}
	stats := r.snapshot(provider)
	return ProviderSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ensureStatsLocked returns the stats cell for a provider; callers hold r.mu.
func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
