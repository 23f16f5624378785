package config

// SnapshotConfig controls the latest-snapshot mirrors. Empty values disable a mirror.
type SnapshotConfig struct {
	Dir      string
	RedisURL string
	RedisTTL Duration
}

// Enabled reports whether any mirror is configured.
func (c SnapshotConfig) Enabled() bool {
	return c.Dir != "" || c.RedisURL != ""
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir:      envOrDefault(envSnapshotDir, ""),
		RedisURL: envOrDefault(envRedisURL, ""),
		RedisTTL: durationEnvOrDefault(envRedisTTL, defaultRedisTTL),
	}
}
