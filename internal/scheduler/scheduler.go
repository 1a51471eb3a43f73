package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"criclite/internal/config"
	"criclite/internal/domain"
	"criclite/internal/logging"
	"criclite/internal/metrics"
	"criclite/internal/provider"
)

// SnapshotStore persists snapshots produced by the refresh loop.
type SnapshotStore interface {
	Write(snapshot domain.Snapshot) error
}

// Scheduler drives the refresh loop: fetch, normalize (inside the provider),
// write the snapshot, then sleep for an interval that adapts to whether any
// match is live and to how many fetches in a row have failed. It is the sole
// writer of the snapshot store; a failed cycle leaves the previous snapshot
// untouched.
type Scheduler struct {
	provider     provider.MatchProvider
	providerName string
	store        SnapshotStore
	logger       *slog.Logger
	metrics      *metrics.Recorder
	cfg          config.PollConfig
	now          func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastErrorKind       string
	LastAttempt         time.Time
	LastSuccess         time.Time
	NextDelay           time.Duration
}

// IsHealthy reports whether the loop has had a recent success and is not
// failing repeatedly.
func (s Status) IsHealthy() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Scheduler. The config is assumed to be clamped by
// config.Load, so the intervals are already in a usable range.
func New(p provider.MatchProvider, store SnapshotStore, logger *slog.Logger, recorder *metrics.Recorder, cfg config.PollConfig) *Scheduler {
	return &Scheduler{
		provider:     p,
		providerName: providerName(p),
		store:        store,
		logger:       logger,
		metrics:      recorder,
		cfg:          cfg,
		now:          time.Now,
		done:         make(chan struct{}),
	}
}

// providerName labels provider metrics; the type name is the fallback for
// providers that don't announce one.
func providerName(p provider.MatchProvider) string {
	if named, ok := p.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", p)
}

// Start begins refreshing until the context is cancelled or Stop is called.
// The first refresh runs immediately so the page has data right after boot.
func (s *Scheduler) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.startMu.Unlock()

	go func() {
		logging.Info(s.logger, "refresh loop started",
			slog.Duration("live_interval", s.cfg.LiveInterval),
			slog.Duration("idle_interval", s.cfg.IdleInterval),
		)

		delay := s.refreshOnce(ctx)
		timer := time.NewTimer(delay)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				logging.Info(s.logger, "refresh loop stopped")
				return
			case <-s.done:
				logging.Info(s.logger, "refresh loop stopped")
				return
			case <-timer.C:
				delay = s.refreshOnce(ctx)
				timer.Reset(delay)
			}
		}
	}()
}

// Stop halts the refresh loop. Any in-flight fetch is abandoned; the last
// written snapshot stays intact.
func (s *Scheduler) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		close(s.done)
	})
	return nil
}

// refreshOnce runs one fetch cycle and returns the delay before the next.
func (s *Scheduler) refreshOnce(ctx context.Context) time.Duration {
	start := s.now()
	s.recordAttempt(start)

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	matches, err := s.provider.FetchMatches(fetchCtx)
	cancel()

	elapsed := s.now().Sub(start)
	s.metrics.RecordProviderAttempt(s.providerName, elapsed, err)
	s.metrics.RecordRefreshCycle(elapsed, err)

	if err != nil {
		return s.handleFailure(err, start, elapsed)
	}
	return s.handleSuccess(matches, start, elapsed)
}

func (s *Scheduler) handleSuccess(matches []domain.Match, start time.Time, elapsed time.Duration) time.Duration {
	snapshot := domain.Snapshot{
		Matches:     matches,
		LastUpdated: start.UTC(),
	}
	if writeErr := s.store.Write(snapshot); writeErr != nil {
		logging.Error(s.logger, "snapshot write failed", writeErr)
	}
	s.metrics.RecordSnapshotSize(len(matches))

	delay := s.cfg.IdleInterval
	if snapshot.HasLive() {
		delay = s.cfg.LiveInterval
	}
	s.recordSuccess(start, delay)

	logging.Info(s.logger, "refreshed matches",
		slog.Int(logging.FieldCount, len(matches)),
		slog.Bool("live", snapshot.HasLive()),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		slog.Duration(logging.FieldInterval, delay),
	)
	return delay
}

func (s *Scheduler) handleFailure(err error, start time.Time, elapsed time.Duration) time.Duration {
	kind := provider.ErrorKind(err)
	failures := s.recordFailure(err, kind, start)
	delay := s.backoffDelay(failures, kind)
	s.setNextDelay(delay)

	attrs := []any{
		slog.String(logging.FieldErrorKind, kind),
		slog.Int(logging.FieldFailures, failures),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		slog.Duration(logging.FieldInterval, delay),
	}
	switch kind {
	case provider.KindAuth:
		// Needs operator intervention; keep the wording greppable.
		logging.Error(s.logger, "refresh failed: api key rejected", err, attrs...)
	default:
		logging.Warn(s.logger, "refresh failed", append(attrs, "error", err)...)
	}

	if rlErr, ok := provider.AsRateLimitError(err); ok {
		s.metrics.RecordRateLimit(rlErr.Provider, rlErr.RetryAfter)
	}
	return delay
}

// backoffDelay computes idle * multiplier^(failures-1), capped. A rate limit
// bumps the exponent so the multiplier bites on the first rate-limited
// failure rather than the second.
func (s *Scheduler) backoffDelay(failures int, kind string) time.Duration {
	exp := failures - 1
	if kind == provider.KindRateLimit {
		exp++
	}
	if exp < 0 {
		exp = 0
	}

	delay := time.Duration(float64(s.cfg.IdleInterval) * math.Pow(s.cfg.BackoffMultiplier, float64(exp)))
	if delay > s.cfg.BackoffMax || delay <= 0 {
		delay = s.cfg.BackoffMax
	}
	return delay
}

func (s *Scheduler) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Scheduler) recordSuccess(at time.Time, next time.Duration) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastErrorKind = ""
	s.status.LastSuccess = at
	s.status.NextDelay = next
}

func (s *Scheduler) recordFailure(err error, kind string, at time.Time) int {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	s.status.LastError = err.Error()
	s.status.LastErrorKind = kind
	s.status.LastAttempt = at
	return s.status.ConsecutiveFailures
}

func (s *Scheduler) setNextDelay(d time.Duration) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.NextDelay = d
}

// Status returns a snapshot of the loop's recent health.
func (s *Scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
