package config

// Config holds runtime configuration for the service.
type Config struct {
	Port     string
	Provider string
	Poll     PollConfig
	CricAPI  CricAPIConfig
	Cache    CacheConfig
	Web      WebConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults,
// then clamps the poll settings into a usable range.
func Load() Config {
	cfg := Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		Poll:     loadPoll(),
		CricAPI:  loadCricAPI(),
		Cache:    loadCache(),
		Web:      loadWeb(),
		Metrics:  loadMetrics(),
	}
	cfg.Poll.clamp()
	return cfg
}
