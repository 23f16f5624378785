package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string
	Upstream    UpstreamConfig
	Snapshots   SnapshotConfig
	Warm        WarmConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		LogLevel:    envOrDefault(envLogLevel, ""),
		LogFormat:   envOrDefault(envLogFormat, ""),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Upstream:    loadUpstream(),
		Snapshots:   loadSnapshots(),
		Warm:        loadWarm(),
		Metrics:     loadMetrics(),
	}
}

// LoadDotEnv merges the given .env files (default ".env") into the process
// environment. Variables already set win; a missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
