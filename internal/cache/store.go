package cache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"criclite/internal/domain"
	"criclite/internal/logging"
)

// Store holds the latest snapshot in memory and mirrors it to a single JSON
// file. The refresh scheduler is the only writer; every other component reads.
// Readers never observe a partial write: the file is replaced via tmp+rename
// and the memory cell is swapped under a lock after the marshal completes.
type Store struct {
	path   string
	logger *slog.Logger

	mu   sync.RWMutex
	snap domain.Snapshot
	ok   bool
}

// New constructs a Store backed by the given file path. The path may point
// into a directory that does not exist yet; Write creates it.
func New(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Load warm-starts the memory cell from an existing cache file. A missing
// file is the empty state; a corrupt file is logged and treated as empty so
// a bad shutdown never blocks startup.
func (s *Store) Load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn(s.logger, "cache file unreadable, starting empty", "error", err)
		}
		return
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logging.Warn(s.logger, "cache file corrupt, starting empty", "error", err)
		return
	}

	s.mu.Lock()
	s.snap = snap
	s.ok = true
	s.mu.Unlock()

	logging.Info(s.logger, "cache warm start",
		slog.Int(logging.FieldCount, len(snap.Matches)),
	)
}

// Write replaces the snapshot. The memory cell always updates so readers see
// fresh data even when the disk is unhappy; a failed file write is reported
// to the caller since the file is what survives a restart.
func (s *Store) Write(snap domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	s.mu.Lock()
	s.snap = snap
	s.ok = true
	s.mu.Unlock()

	return s.writeFile(data)
}

func (s *Store) writeFile(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	if existing, err := os.ReadFile(s.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache tmp: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}

// Read returns the last successfully written snapshot. The second return is
// false while no snapshot has ever been written (the empty sentinel).
func (s *Store) Read() (domain.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.ok
}

// Freshness reports the elapsed time since the snapshot was produced, or
// false when no snapshot exists yet.
func (s *Store) Freshness(now time.Time) (time.Duration, bool) {
	snap, ok := s.Read()
	if !ok {
		return 0, false
	}
	return snap.Age(now), true
}
