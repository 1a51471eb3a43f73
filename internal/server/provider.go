package server

import (
	"log/slog"

	"criclite/internal/config"
	"criclite/internal/logging"
	"criclite/internal/provider"
	"criclite/internal/provider/cricapi"
	"criclite/internal/provider/fixture"
)

// selectProvider picks the match source from configuration. Anything that
// prevents real API use (explicit fixture selection, a missing key) falls
// back to the deterministic fixture provider so the service still boots.
func selectProvider(cfg config.Config, logger *slog.Logger) provider.MatchProvider {
	switch cfg.Provider {
	case fixture.Name:
		logging.Info(logger, "using fixture provider",
			slog.String(logging.FieldProvider, fixture.Name),
		)
		return fixture.New()
	case cricapi.Name, "":
		if cfg.CricAPI.APIKey == "" {
			logging.Warn(logger, "no api key configured, falling back to fixture provider",
				slog.String(logging.FieldProvider, fixture.Name),
			)
			return fixture.New()
		}
		return buildCricAPI(cfg, logger)
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture provider",
			slog.String(logging.FieldProvider, cfg.Provider),
		)
		return fixture.New()
	}
}

func buildCricAPI(cfg config.Config, logger *slog.Logger) provider.MatchProvider {
	table, err := cricapi.LoadTournamentTable(cfg.Cache.TournamentMapFile)
	if err != nil {
		// A broken lookup table only affects tournament display names.
		logging.Warn(logger, "tournament map unavailable, using raw names", "error", err)
		table = cricapi.TournamentTable{}
	}

	return cricapi.NewClient(cricapi.Config{
		BaseURL: cfg.CricAPI.BaseURL,
		APIKey:  cfg.CricAPI.APIKey,
		Logger:  logger,
		Mapper:  cricapi.NewMapper(table, cfg.Cache.IgnoredTournaments),
	})
}
