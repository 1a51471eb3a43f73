package config

const (
	envCricBaseURL = "CRICAPI_BASE_URL"
	envCricAPIKey  = "CRICAPI_API_KEY"

	defaultCricBaseURL = "https://api.cricapi.com/v1"
)

// CricAPIConfig controls how we talk to the CricAPI provider.
type CricAPIConfig struct {
	BaseURL string
	APIKey  string
}

func loadCricAPI() CricAPIConfig {
	return CricAPIConfig{
		BaseURL: envOrDefault(envCricBaseURL, defaultCricBaseURL),
		APIKey:  envOrDefault(envCricAPIKey, ""),
	}
}
