package config

// WarmConfig controls the optional cache warm-up loop. Both fields off by default,
// so refresh stays request-driven.
type WarmConfig struct {
	OnStart  bool
	Interval Duration
}

func loadWarm() WarmConfig {
	return WarmConfig{
		OnStart:  boolEnvOrDefault(envWarmOnStart, false),
		Interval: durationEnvOrDefault(envWarmInterval, 0),
	}
}
