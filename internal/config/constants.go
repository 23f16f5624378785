package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envCORSOrigins   = "CORS_ALLOWED_ORIGINS"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envTimeout       = "UPSTREAM_TIMEOUT"
	envRetryAttempts = "UPSTREAM_RETRY_ATTEMPTS"
	envRetryBackoff  = "UPSTREAM_RETRY_BACKOFF"
	envESPNBaseURL   = "ESPN_BASE_URL"
	envStatsBaseURL  = "STATSAPI_BASE_URL"
	envSnapshotDir   = "SNAPSHOT_DIR"
	envRedisURL      = "REDIS_URL"
	envRedisTTL      = "REDIS_SNAPSHOT_TTL"
	envWarmOnStart   = "WARM_ON_START"
	envWarmInterval  = "WARM_INTERVAL"

	// ProviderLive routes every sport to its real upstream.
	ProviderLive = "live"
	// ProviderFixture serves deterministic offline data.
	ProviderFixture = "fixture"

	defaultPort          = "4000"
	defaultProvider      = ProviderLive
	defaultCORSOrigins   = "*"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "live-sports-service"
	defaultTimeout       = 10 * Duration(time.Second)
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 200 * Duration(time.Millisecond)
	defaultRedisTTL      = 5 * Duration(time.Minute)
)
