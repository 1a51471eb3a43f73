package fixture

import (
	"context"
	"time"

	"criclite/internal/domain"
)

// Name identifies this provider in logs.
const Name = "fixture"

// Provider returns a static set of matches useful for local development and
// for running without an API key.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Name identifies the provider in logs and metric attributes.
func (p *Provider) Name() string { return Name }

// FetchMatches returns a deterministic set of example matches anchored to the
// current hour so countdowns render sensibly.
func (p *Provider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	base := p.now().UTC().Truncate(time.Hour)

	return []domain.Match{
		{
			ID:          "fixture-1",
			Tournament:  "Indian Premier League",
			Teams:       [2]string{"Chennai Super Kings", "Mumbai Indians"},
			Scores:      [2]string{"182/6 (20 ov)", "94/3 (11.4 ov)"},
			Status:      domain.StatusLive,
			StartTime:   base.Add(-2 * time.Hour),
			Format:      "T20",
			Venue:       "MA Chidambaram Stadium, Chennai",
			MatchNumber: "Match 12",
			StatusNote:  "Mumbai Indians need 89 runs in 50 balls",
			InPlay:      true,
			Priority:    2,
		},
		{
			ID:         "fixture-2",
			Tournament: "World Test Championship",
			Teams:      [2]string{"Australia", "England"},
			Scores:     [2]string{"425/10 (110 ov) & 130/2 (35 ov)", "310/10 (95.3 ov)"},
			Status:     domain.StatusLive,
			StartTime:  base.Add(-26 * time.Hour),
			Format:     "TEST",
			Venue:      "Lord's, London",
			StatusNote: "Day 3: Stumps - Australia lead by 245 runs",
			InPlay:     false,
			Priority:   1,
		},
		{
			ID:         "fixture-3",
			Tournament: "ODI Series",
			Teams:      [2]string{"India", "South Africa"},
			Status:     domain.StatusScheduled,
			StartTime:  base.Add(4 * time.Hour),
			Format:     "ODI",
			Venue:      "Wanderers Stadium, Johannesburg",
			StatusNote: "Match starts at 14:00 GMT",
			Priority:   2,
		},
		{
			ID:         "fixture-4",
			Tournament: "Big Bash League",
			Teams:      [2]string{"Sydney Sixers", "Melbourne Stars"},
			Scores:     [2]string{"165/8 (20 ov)", "166/4 (18.1 ov)"},
			Status:     domain.StatusCompleted,
			StartTime:  base.Add(-8 * time.Hour),
			Format:     "T20",
			Venue:      "Sydney Cricket Ground",
			StatusNote: "Melbourne Stars won by 6 wickets",
			Priority:   3,
		},
	}, nil
}
