package cricapi

import (
	"encoding/json"
	"fmt"
	"os"
)

// TournamentTable maps provider series ids to display names. It is loaded
// once at startup and never mutated afterwards.
type TournamentTable map[string]string

// Resolve returns the display name for a series id, or ("", false) when the
// id is not in the table.
func (t TournamentTable) Resolve(seriesID string) (string, bool) {
	if t == nil || seriesID == "" {
		return "", false
	}
	name, ok := t[seriesID]
	return name, ok
}

// LoadTournamentTable reads the static id -> display-name mapping from a JSON
// file. An empty path yields an empty table; a missing or unreadable file is
// an error so a misconfigured path is caught at startup.
func LoadTournamentTable(path string) (TournamentTable, error) {
	if path == "" {
		return TournamentTable{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tournament map: %w", err)
	}

	var table TournamentTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse tournament map: %w", err)
	}
	return table, nil
}
