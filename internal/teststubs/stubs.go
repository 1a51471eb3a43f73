package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"criclite/internal/domain"
)

// StubProvider is a test double for provider.MatchProvider. Err applies to
// every call; Errs, when set, is consumed one entry per call so tests can
// script failure-then-recovery sequences.
type StubProvider struct {
	Matches []domain.Match
	Err     error
	Errs    []error
	Calls   atomic.Int32
	Notify  chan struct{}

	mu sync.Mutex
}

// Name identifies the stub in metric attributes.
func (s *StubProvider) Name() string { return "stub" }

// FetchMatches returns the configured matches and error while tracking calls.
func (s *StubProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	call := int(s.Calls.Add(1))

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Errs) > 0 {
		idx := call - 1
		if idx >= len(s.Errs) {
			idx = len(s.Errs) - 1
		}
		if err := s.Errs[idx]; err != nil {
			return nil, err
		}
		return s.Matches, nil
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Matches, nil
}

// StubSnapshotStore is a test double for scheduler.SnapshotStore that also
// serves the read contract used by the web layer.
type StubSnapshotStore struct {
	mu       sync.Mutex
	snapshot domain.Snapshot
	ok       bool
	writes   int

	WriteErr error
}

// Write records the snapshot for later assertions.
func (s *StubSnapshotStore) Write(snapshot domain.Snapshot) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
	s.ok = true
	s.writes++
	return nil
}

// Read returns the last written snapshot and whether one exists.
func (s *StubSnapshotStore) Read() (domain.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, s.ok
}

// Writes returns how many snapshots have been written.
func (s *StubSnapshotStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Seed pre-populates the store, bypassing the write counter.
func (s *StubSnapshotStore) Seed(snapshot domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
	s.ok = true
}
