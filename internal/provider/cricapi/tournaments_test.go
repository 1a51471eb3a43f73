package cricapi

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTournamentTableEmptyPath(t *testing.T) {
	table, err := LoadTournamentTable("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 0 {
		t.Fatalf("expected empty table, got %v", table)
	}
}

func TestLoadTournamentTableReadsMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournaments.json")
	content := `{"ipl2025": "Indian Premier League", "bbl2025": "Big Bash League"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	table, err := LoadTournamentTable(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name, ok := table.Resolve("ipl2025")
	if !ok || name != "Indian Premier League" {
		t.Fatalf("expected mapped name, got %q ok=%v", name, ok)
	}
	if _, ok := table.Resolve("xyz99"); ok {
		t.Fatal("expected unmapped id to miss")
	}
}

func TestLoadTournamentTableErrors(t *testing.T) {
	if _, err := LoadTournamentTable(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadTournamentTable(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestResolveNilTableIsSafe(t *testing.T) {
	var table TournamentTable
	if _, ok := table.Resolve("ipl2025"); ok {
		t.Fatal("expected miss on nil table")
	}
}
