package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	RefreshInterval Duration
	SourceTimeout   Duration
	SourcesFile     string
	AdminToken      string
	SnapshotDir     string
	GAA             GAAConfig
	Metrics         MetricsConfig
}

// GAAConfig controls the GAA source's backing data.
type GAAConfig struct {
	URL string
	// Mode selects where raw records come from: "snapshot" reads the on-disk
	// records written by the admin refresh, "live" renders the page per run.
	Mode string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		SourceTimeout:   durationEnvOrDefault(envSourceTimeout, defaultSourceTimeout),
		SourcesFile:     envOrDefault(envSourcesFile, ""),
		AdminToken:      envOrDefault(envAdminToken, ""),
		SnapshotDir:     envOrDefault(envSnapshotDir, defaultSnapshotDir),
		GAA:             loadGAA(),
		Metrics:         loadMetrics(),
	}
}

func loadGAA() GAAConfig {
	mode := envOrDefault(envGAAMode, defaultGAAMode)
	if mode != "live" {
		mode = "snapshot"
	}
	return GAAConfig{
		URL:  envOrDefault(envGAAURL, defaultGAAURL),
		Mode: mode,
	}
}
