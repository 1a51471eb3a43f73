package view

import (
	"strings"
	"time"

	"criclite/internal/domain"
)

const title = "CRICLITE - LIVE CRICKET SCORES"

// Page is the render-ready model shared by the text and HTML surfaces.
type Page struct {
	Title   string
	Updated string // "2 minutes ago"; empty when NoData
	Stale   bool
	NoData  bool
	Boxes   []string
}

// BuildPage assembles the page model from a snapshot. ok is the cache's
// empty sentinel; staleAfter is the age beyond which the stale notice shows.
func BuildPage(snap domain.Snapshot, ok bool, now time.Time, staleAfter time.Duration) Page {
	page := Page{Title: title}
	if !ok {
		page.NoData = true
		return page
	}

	age := snap.Age(now)
	page.Updated = TimeAgo(age)
	page.Stale = staleAfter > 0 && age > staleAfter

	for _, m := range SortForDisplay(snap.Matches) {
		page.Boxes = append(page.Boxes, RenderMatch(m, now))
	}
	return page
}

// Text renders the page as plain text for curl and the /plain endpoint.
func (p Page) Text() string {
	var b strings.Builder
	b.WriteString(p.Title + "\n")
	b.WriteString(strings.Repeat("=", len(p.Title)) + "\n\n")

	if p.NoData {
		b.WriteString("No data available yet. Scores appear after the first refresh.\n")
		return b.String()
	}

	b.WriteString("Updated " + p.Updated + "\n")
	if p.Stale {
		b.WriteString("[!] Data may be stale.\n")
	}
	b.WriteString("\n")

	if len(p.Boxes) == 0 {
		b.WriteString("No matches on right now.\n")
		return b.String()
	}
	for _, box := range p.Boxes {
		b.WriteString(box + "\n\n")
	}
	return b.String()
}
