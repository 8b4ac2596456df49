package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envSourceTimeout   = "SOURCE_TIMEOUT"
	envSourcesFile     = "SOURCES_FILE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken      = "ADMIN_TOKEN"
	envSnapshotDir     = "SNAPSHOT_DIR"
	envGAAURL          = "GAA_FIXTURES_URL"
	envGAAMode         = "GAA_MODE"

	defaultPort = "4000"
	// Full aggregation runs a headless browser for the GAA source, so keep the
	// background refresh cadence conservative.
	defaultRefreshInterval = 15 * Duration(time.Minute)
	// Per-source budget for one extraction attempt, page render included.
	defaultSourceTimeout = 90 * Duration(time.Second)
	defaultMetricsPort   = "9090"
	defaultSnapshotDir   = "data/snapshots"
	defaultGAAURL        = "https://www.gaa.ie/fixtures-results"
	defaultGAAMode       = "snapshot"
)
