package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envPollLive      = "POLL_INTERVAL_LIVE"
	envPollIdle      = "POLL_INTERVAL_IDLE"
	envPollMin       = "POLL_MIN_INTERVAL"
	envBackoffMult   = "BACKOFF_MULTIPLIER"
	envBackoffMax    = "BACKOFF_MAX_INTERVAL"
	envFetchTimeout  = "FETCH_TIMEOUT"
	envStaleMargin   = "STALE_MARGIN"
	envCacheFile     = "CACHE_FILE"
	envTournamentMap = "TOURNAMENT_MAP_FILE"
	envIgnoredSeries = "IGNORED_TOURNAMENTS"
	envThemeDefault  = "THEME_DEFAULT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "8080"
	defaultProvider = "cricapi"
	// Poll every two minutes while a match is live; back off to ten minutes
	// when nothing is on to conserve the API call budget.
	defaultPollLive = 2 * time.Minute
	defaultPollIdle = 10 * time.Minute
	// Floor imposed by the provider plan; the live interval never goes below it.
	defaultPollMin      = 30 * time.Second
	defaultBackoffMult  = 2.0
	defaultBackoffMax   = 30 * time.Minute
	defaultFetchTimeout = 15 * time.Second
	defaultStaleMargin  = 5 * time.Minute

	defaultCacheFile     = "data/live_matches.json"
	defaultTournamentMap = "data/tournaments.json"
	defaultTheme         = "dark"
	defaultMetricsPort   = "9090"
)

// Domestic first-class competitions that crowd the page without adding much
// for a live-scores audience. Overridable via IGNORED_TOURNAMENTS.
var defaultIgnoredTournaments = []string{
	"Dhaka Premier Division Cricket League",
	"National Super League 4-Day Tournament",
	"CSA 4-Day Series Division 2",
	"CSA 4-Day Series Division 1",
	"Men's PM Cup",
	"National T20 Cup",
	"Plunket Shield",
	"Sheffield Shield",
	"County Championship Division 1",
	"County Championship Division 2",
	"Bangladesh Cricket League",
	"Ranji Trophy Plate",
}
