package domain

import "time"

// MatchStatus is the four-state lifecycle of a match as the service exposes it.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
	StatusAbandoned MatchStatus = "abandoned"
)

// Match is the normalized record for one live or recently completed match.
// All free-text fields are plain ASCII by the time a Match exists.
type Match struct {
	ID         string      `json:"match_id"`
	Tournament string      `json:"tournament_name"`
	Teams      [2]string   `json:"teams"`
	Scores     [2]string   `json:"scores"`
	Status     MatchStatus `json:"status"`
	StartTime  time.Time   `json:"start_time"`

	Format      string `json:"format,omitempty"`
	Venue       string `json:"venue,omitempty"`
	Date        string `json:"date,omitempty"`
	MatchNumber string `json:"match_number,omitempty"`
	StatusNote  string `json:"status_note,omitempty"`
	// InPlay is true while the match is live and play is actually in
	// progress, not at stumps, lunch, tea, drinks or a rain break.
	InPlay   bool `json:"in_play,omitempty"`
	Priority int  `json:"priority,omitempty"`
}

// IsLive reports whether the match is in the live state (including breaks).
func (m Match) IsLive() bool {
	return m.Status == StatusLive
}

// Snapshot is the full set of known matches at one refresh, in the order the
// provider returned them.
type Snapshot struct {
	Matches     []Match   `json:"matches"`
	LastUpdated time.Time `json:"last_updated"`
}

// HasLive reports whether any match in the snapshot is live.
func (s Snapshot) HasLive() bool {
	for _, m := range s.Matches {
		if m.IsLive() {
			return true
		}
	}
	return false
}

// Age returns the elapsed time since the snapshot was produced.
func (s Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.LastUpdated)
}
