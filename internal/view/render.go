package view

import (
	"fmt"
	"strings"
	"time"

	"criclite/internal/domain"
)

// Box geometry from the terminal layout: 37 columns of content inside a
// 41-column frame, team names left-justified in a 20-column field.
const (
	contentWidth  = 37
	teamNameWidth = 20
)

var (
	boxEdge  = "+" + strings.Repeat("-", contentWidth+2) + "+"
	boxBlank = "|" + strings.Repeat(" ", contentWidth+2) + "|"
)

// RenderMatch renders one match as a fixed-width ASCII box.
func RenderMatch(m domain.Match, now time.Time) string {
	lines := []string{boxEdge}
	lines = append(lines, boxLine(header(m)))
	lines = append(lines, boxBlank)

	marker := "o"
	if m.InPlay {
		marker = "*"
	}
	for _, l := range wrap(fmt.Sprintf("%s %s vs %s", marker, m.Teams[0], m.Teams[1])) {
		lines = append(lines, boxLine(l))
	}
	lines = append(lines, boxBlank)

	if m.Scores[0] != "" || m.Scores[1] != "" {
		lines = append(lines, boxLine(teamRow(m.Teams[0], m.Scores[0])))
		lines = append(lines, boxLine(teamRow(m.Teams[1], m.Scores[1])))
		lines = append(lines, boxBlank)
	}

	for _, l := range statusLines(m, now) {
		lines = append(lines, boxLine(l))
	}
	lines = append(lines, boxEdge)

	return strings.Join(lines, "\n")
}

// header renders the category line, e.g. "T20: Indian Premier League".
func header(m domain.Match) string {
	switch {
	case m.Format != "" && m.Tournament != "" && m.Tournament != m.Format:
		return m.Format + ": " + m.Tournament
	case m.Tournament != "":
		return m.Tournament
	default:
		return m.Format
	}
}

func teamRow(team, score string) string {
	if len(team) > teamNameWidth {
		team = team[:teamNameWidth]
	}
	return strings.TrimRight(fmt.Sprintf("%-*s %s", teamNameWidth, team, score), " ")
}

// statusLines picks what goes under the scores: the provider's status line,
// or a countdown for matches that have not started yet.
func statusLines(m domain.Match, now time.Time) []string {
	if m.Status == domain.StatusScheduled {
		if !m.StartTime.IsZero() {
			return []string{Countdown(m.StartTime, now), StartClock(m.StartTime)}
		}
		if m.Date != "" {
			return wrap("Match scheduled for " + m.Date)
		}
	}
	if m.StatusNote == "" {
		return nil
	}
	return wrap(m.StatusNote)
}

func boxLine(content string) string {
	if len(content) > contentWidth {
		content = content[:contentWidth]
	}
	return fmt.Sprintf("| %-*s |", contentWidth, content)
}

// wrap word-wraps text to the box's content width. Words longer than the
// width are hard-cut rather than overflowing the frame.
func wrap(text string) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		for len(word) > contentWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:contentWidth])
			word = word[contentWidth:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= contentWidth:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
