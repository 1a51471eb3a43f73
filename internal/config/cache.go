package config

import "strings"

// CacheConfig locates the snapshot file and the static lookup tables.
type CacheConfig struct {
	FilePath           string
	TournamentMapFile  string
	IgnoredTournaments []string
}

func loadCache() CacheConfig {
	return CacheConfig{
		FilePath:           envOrDefault(envCacheFile, defaultCacheFile),
		TournamentMapFile:  envOrDefault(envTournamentMap, defaultTournamentMap),
		IgnoredTournaments: loadIgnoredTournaments(),
	}
}

func loadIgnoredTournaments() []string {
	raw := envOrDefault(envIgnoredSeries, "")
	if raw == "" {
		return append([]string(nil), defaultIgnoredTournaments...)
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
