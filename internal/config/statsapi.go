package config

import "github.com/spf13/viper"

// StatsAPIConfig controls how we talk to the MLB stats API.
type StatsAPIConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   Duration
	// Attempts is the total number of schedule fetches tried; 1 disables retries.
	Attempts int
	Backoff  Duration
}

func loadStatsAPI(v *viper.Viper) StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL:   stringOrDefault(v, keyStatsAPIBaseURL, defaultStatsAPIBaseURL),
		UserAgent: stringOrDefault(v, keyUserAgent, defaultUserAgent),
		Timeout:   durationOrDefault(v, keyHTTPTimeout, defaultHTTPTimeout),
		Attempts:  intOrDefault(v, keyFetchAttempts, defaultFetchAttempts),
		Backoff:   durationOrDefault(v, keyFetchBackoff, defaultFetchBackoff),
	}
}
