package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"criclite/internal/domain"
)

func TestStubProviderReturnsMatchesAndCountsCalls(t *testing.T) {
	p := &StubProvider{Matches: []domain.Match{{ID: "m1"}}}

	matches, err := p.FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "m1" {
		t.Fatalf("unexpected matches %+v", matches)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected 1 call, got %d", p.Calls.Load())
	}
}

func TestStubProviderErrSequence(t *testing.T) {
	boom := errors.New("boom")
	p := &StubProvider{
		Matches: []domain.Match{{ID: "m1"}},
		Errs:    []error{boom, nil},
	}

	if _, err := p.FetchMatches(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected scripted error on first call, got %v", err)
	}
	if _, err := p.FetchMatches(context.Background()); err != nil {
		t.Fatalf("expected recovery on second call, got %v", err)
	}
	// The last entry repeats once the script runs out.
	if _, err := p.FetchMatches(context.Background()); err != nil {
		t.Fatalf("expected last entry to repeat, got %v", err)
	}
}

func TestStubSnapshotStoreRoundTrip(t *testing.T) {
	s := &StubSnapshotStore{}
	if _, ok := s.Read(); ok {
		t.Fatal("expected empty store")
	}

	snap := domain.Snapshot{LastUpdated: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	if err := s.Write(snap); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	got, ok := s.Read()
	if !ok || !got.LastUpdated.Equal(snap.LastUpdated) {
		t.Fatalf("unexpected read %+v ok=%v", got, ok)
	}
	if s.Writes() != 1 {
		t.Fatalf("expected 1 write, got %d", s.Writes())
	}
}
