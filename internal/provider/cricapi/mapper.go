package cricapi

import (
	"fmt"
	"strconv"
	"strings"

	"criclite/internal/domain"
	"criclite/internal/timeutil"
)

// Mapper converts raw CricAPI match entries into normalized domain records.
// It holds the immutable tournament table and the ignored-tournament list, so
// normalization is a pure function of the payload.
type Mapper struct {
	tournaments TournamentTable
	ignored     []string
}

// NewMapper constructs a Mapper. A nil table behaves as an empty one.
func NewMapper(tournaments TournamentTable, ignored []string) *Mapper {
	return &Mapper{
		tournaments: tournaments,
		ignored:     ignored,
	}
}

// NormalizeAll maps every entry in the payload, preserving provider order.
// Entries missing a match id or either team name are skipped individually
// and counted; matches in ignored tournaments are dropped without counting.
func (m *Mapper) NormalizeAll(payload *currentMatchesResponse) ([]domain.Match, int) {
	if payload == nil {
		return nil, 0
	}

	matches := make([]domain.Match, 0, len(payload.Data))
	skipped := 0
	for _, raw := range payload.Data {
		match, ok := m.normalize(raw)
		if !ok {
			skipped++
			continue
		}
		if m.isIgnored(match.Tournament) {
			continue
		}
		matches = append(matches, match)
	}
	return matches, skipped
}

func (m *Mapper) normalize(raw matchResponse) (domain.Match, bool) {
	if raw.ID == "" || len(raw.Teams) < 2 || raw.Teams[0] == "" || raw.Teams[1] == "" {
		return domain.Match{}, false
	}

	teams := [2]string{toASCII(raw.Teams[0]), toASCII(raw.Teams[1])}
	format := strings.ToUpper(strings.TrimSpace(raw.MatchType))
	tournament, matchNumber := parseMatchName(raw.Name)
	if resolved, ok := m.tournaments.Resolve(raw.SeriesID); ok {
		tournament = resolved
	}
	if tournament == "" {
		tournament = format
	}

	status := deriveStatus(raw.Status, raw.MatchStarted, raw.MatchEnded)

	return domain.Match{
		ID:          raw.ID,
		Tournament:  toASCII(tournament),
		Teams:       teams,
		Scores:      matchScores(raw.Score, raw.Teams),
		Status:      status,
		StartTime:   timeutil.ParseGMT(raw.DateTimeGMT),
		Format:      toASCII(format),
		Venue:       toASCII(raw.Venue),
		Date:        normalizeDate(raw.Date),
		MatchNumber: toASCII(matchNumber),
		StatusNote:  toASCII(strings.TrimSpace(raw.Status)),
		InPlay:      status == domain.StatusLive && !atBreak(raw.Status),
		Priority:    matchPriority(raw.Name, format, teams),
	}, true
}

// normalizeDate canonicalizes the provider's coarse date to YYYY-MM-DD when
// it parses; anything else (multi-day ranges, free text) passes through as
// display text.
func normalizeDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if day, err := timeutil.ParseDate(trimmed); err == nil {
		return timeutil.FormatDate(day)
	}
	return toASCII(trimmed)
}

func (m *Mapper) isIgnored(tournament string) bool {
	for _, ignored := range m.ignored {
		if ignored != "" && strings.Contains(tournament, ignored) {
			return true
		}
	}
	return false
}

// parseMatchName splits a provider match name like
// "India vs Australia, Indian Premier League Match 42" into the tournament
// text after the first comma and a trailing "Match N" suffix when present.
func parseMatchName(name string) (tournament, matchNumber string) {
	_, after, found := strings.Cut(name, ",")
	if !found {
		return "", ""
	}
	tournament = strings.TrimSpace(after)

	if before, number, ok := strings.Cut(tournament, "Match"); ok {
		matchNumber = strings.TrimSpace("Match" + number)
		tournament = strings.TrimSpace(before)
	}
	return tournament, matchNumber
}

var (
	completedKeywords = []string{"won by", "tied", "no result", "drawn"}
	liveKeywords      = []string{"in progress", "live", "innings break", "stumps", "lunch", "tea", "rain", "drinks", "opt to", "elected to"}
	breakKeywords     = []string{"stumps", "lunch", "tea", "drinks", "rain"}
)

// deriveStatus maps the provider's status line plus the started/ended flags
// onto the four-state enum. Rules apply in a fixed order (abandoned, then
// completed, then live); anything unrecognized is scheduled so no match is
// silently dropped.
func deriveStatus(statusText string, started, ended bool) domain.MatchStatus {
	lower := strings.ToLower(statusText)
	switch {
	case strings.Contains(lower, "abandon"):
		return domain.StatusAbandoned
	case ended, containsAny(lower, completedKeywords):
		return domain.StatusCompleted
	case containsAny(lower, liveKeywords), started:
		return domain.StatusLive
	default:
		return domain.StatusScheduled
	}
}

// atBreak reports whether a live match is paused at stumps, an interval or a
// rain delay rather than actively in play.
func atBreak(statusText string) bool {
	return containsAny(strings.ToLower(statusText), breakKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// matchScores pairs innings entries with teams by substring on the innings
// label and joins multiple innings with " & " for the longer formats.
func matchScores(entries []inningsScore, teams []string) [2]string {
	var scores [2]string
	for _, entry := range entries {
		inning := strings.ToLower(entry.Inning)
		formatted := formatScore(entry)
		for i := 0; i < 2 && i < len(teams); i++ {
			if teams[i] == "" || !strings.Contains(inning, strings.ToLower(teams[i])) {
				continue
			}
			if scores[i] != "" {
				scores[i] += " & " + formatted
			} else {
				scores[i] = formatted
			}
			break
		}
	}
	scores[0] = toASCII(scores[0])
	scores[1] = toASCII(scores[1])
	return scores
}

// formatScore renders one innings as "runs/wickets (overs ov)".
func formatScore(entry inningsScore) string {
	score := fmt.Sprintf("%d/%d", entry.Runs, entry.Wickets)
	if entry.Overs > 0 {
		score += " (" + strconv.FormatFloat(entry.Overs, 'f', -1, 64) + " ov)"
	}
	return score
}
