package provider

import (
	"context"

	"criclite/internal/domain"
)

// MatchProvider defines how upstream match data is fetched and normalized.
// Implementations return records in the provider's response order and never
// retry on their own; pacing and recovery belong to the refresh scheduler.
type MatchProvider interface {
	FetchMatches(ctx context.Context) ([]domain.Match, error)
}
