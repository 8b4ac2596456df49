package server

import (
	"log/slog"

	"fixtures-service/internal/config"
	"fixtures-service/internal/domain"
	"fixtures-service/internal/snapshots"
	"fixtures-service/internal/sources"
	"fixtures-service/internal/sources/f1"
	"fixtures-service/internal/sources/gaa"
	"fixtures-service/internal/sources/soccer"
)

// buildRegistry loads the source configs and pairs each with its extractor.
// Unknown ids are still registered so toggles and listings see them; the
// coordinator reports them as having no extractor.
func buildRegistry(cfg config.Config, logger *slog.Logger, store *snapshots.FSStore) *sources.Registry {
	registry := sources.NewRegistry()
	for _, src := range loadSourceConfigs(cfg, logger) {
		registry.Add(src, buildExtractor(src.ID, cfg, logger, store))
	}
	return registry
}

func loadSourceConfigs(cfg config.Config, logger *slog.Logger) []domain.SourceConfig {
	if cfg.SourcesFile == "" {
		return config.DefaultSources()
	}
	configs, err := config.LoadSources(cfg.SourcesFile)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to load sources file, using defaults",
				"path", cfg.SourcesFile,
				"err", err,
			)
		}
		return config.DefaultSources()
	}
	return configs
}

func buildExtractor(id string, cfg config.Config, logger *slog.Logger, store *snapshots.FSStore) sources.Extractor {
	switch id {
	case gaa.SourceID:
		return gaa.New(buildGAARecordSource(cfg, logger, store))
	case f1.SourceID:
		return f1.New()
	case soccer.SourceID:
		return soccer.New()
	default:
		if logger != nil {
			logger.Warn("no extractor for configured source", "source", id)
		}
		return nil
	}
}

func buildGAARecordSource(cfg config.Config, logger *slog.Logger, store *snapshots.FSStore) gaa.RecordSource {
	if cfg.GAA.Mode == "live" {
		return gaa.NewPageRenderer(cfg.GAA.URL, logger)
	}
	if store == nil {
		store = snapshots.NewFSStore(cfg.SnapshotDir)
	}
	return gaa.NewSnapshotSource(store)
}
