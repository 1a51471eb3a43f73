package view

import (
	"sort"

	"criclite/internal/domain"
)

// statusRank orders matches on the page: what's on now first, then what's
// next, then what's finished.
var statusRank = map[domain.MatchStatus]int{
	domain.StatusLive:      0,
	domain.StatusScheduled: 1,
	domain.StatusCompleted: 2,
	domain.StatusAbandoned: 3,
}

// SortForDisplay returns matches ordered by status rank then priority. The
// sort is stable so provider order breaks ties, and the input slice is left
// untouched since the cache keeps provider order.
func SortForDisplay(matches []domain.Match) []domain.Match {
	sorted := make([]domain.Match, len(matches))
	copy(sorted, matches)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := statusRank[sorted[i].Status], statusRank[sorted[j].Status]
		if ri != rj {
			return ri < rj
		}
		return sorted[i].Priority < sorted[j].Priority
	})
	return sorted
}
