package config

// WebConfig controls the page-serving layer.
type WebConfig struct {
	DefaultTheme string
}

func loadWeb() WebConfig {
	return WebConfig{
		DefaultTheme: envOrDefault(envThemeDefault, defaultTheme),
	}
}
