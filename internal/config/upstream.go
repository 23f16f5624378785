package config

// UpstreamConfig controls how the live providers reach their upstream APIs.
type UpstreamConfig struct {
	Timeout         Duration
	RetryAttempts   int
	RetryBackoff    Duration
	ESPNBaseURL     string // empty uses the provider default
	StatsAPIBaseURL string // empty uses the provider default
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		Timeout:         durationEnvOrDefault(envTimeout, defaultTimeout),
		RetryAttempts:   intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:    durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		ESPNBaseURL:     envOrDefault(envESPNBaseURL, ""),
		StatsAPIBaseURL: envOrDefault(envStatsBaseURL, ""),
	}
}
