package cricapi

import "strings"

// Display priority buckets; lower sorts first. Keyword rules are an ordered
// slice so resolution is deterministic.
const defaultPriority = 10

type priorityRule struct {
	keyword  string
	priority int
}

var priorityRules = []priorityRule{
	{"icc world cup", 1},
	{"icc t20 world cup", 1},
	{"world test championship", 1},
	{"indian premier league", 2},
	{"ipl", 2},
	{"big bash league", 3},
	{"pakistan super league", 3},
	{"caribbean premier league", 3},
	{"the hundred", 3},
}

const (
	priorityInternational = 2
	priorityWomens        = 3
)

// Test-playing nations; a match involving one of these counts as a top
// international fixture for priority purposes.
var topTeams = []string{
	"india", "australia", "england", "south africa", "new zealand",
	"pakistan", "bangladesh", "sri lanka", "west indies", "afghanistan",
}

// matchPriority ranks a match for display ordering: explicit tournament
// keywords first, then internationals between top teams by format, then
// women's fixtures, then everything else.
func matchPriority(matchName, format string, teams [2]string) int {
	name := strings.ToLower(matchName)

	for _, rule := range priorityRules {
		if strings.Contains(name, rule.keyword) {
			return rule.priority
		}
	}

	if hasTopTeam(teams) {
		switch strings.ToUpper(format) {
		case "T20", "ODI", "TEST":
			return priorityInternational
		}
	}

	if strings.Contains(name, "women") {
		return priorityWomens
	}

	return defaultPriority
}

func hasTopTeam(teams [2]string) bool {
	for _, team := range teams {
		lower := strings.ToLower(team)
		for _, top := range topTeams {
			if strings.Contains(lower, top) {
				return true
			}
		}
	}
	return false
}
