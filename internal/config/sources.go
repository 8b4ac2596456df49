package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fixtures-service/internal/domain"
)

// sourcesFile is the YAML shape of an optional source-seed override file.
type sourcesFile struct {
	Sources []sourceEntry `yaml:"sources"`
}

type sourceEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Enabled     bool   `yaml:"enabled"`
	Priority    int    `yaml:"priority"`
	SeasonStart string `yaml:"seasonStart"`
	SeasonEnd   string `yaml:"seasonEnd"`
}

// DefaultSources returns the built-in source seed: GAA and F1 on, Soccer
// registered but off until its extractor does something useful.
func DefaultSources() []domain.SourceConfig {
	return []domain.SourceConfig{
		{ID: "gaa", Name: "GAA", Enabled: true, Priority: 1, SeasonStart: "2025-01-01", SeasonEnd: "2025-09-30"},
		{ID: "f1", Name: "F1", Enabled: true, Priority: 2},
		{ID: "soccer", Name: "Soccer", Enabled: false, Priority: 3, SeasonStart: "2025-08-01", SeasonEnd: "2026-05-31"},
	}
}

// LoadSources reads the source seed from a YAML file, falling back to the
// built-in defaults when no path is configured.
func LoadSources(path string) ([]domain.SourceConfig, error) {
	if path == "" {
		return DefaultSources(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var parsed sourcesFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}
	if len(parsed.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s lists no sources", path)
	}

	configs := make([]domain.SourceConfig, 0, len(parsed.Sources))
	for _, s := range parsed.Sources {
		if s.ID == "" {
			return nil, fmt.Errorf("sources file %s has an entry without an id", path)
		}
		name := s.Name
		if name == "" {
			name = s.ID
		}
		configs = append(configs, domain.SourceConfig{
			ID:          s.ID,
			Name:        name,
			Enabled:     s.Enabled,
			Priority:    s.Priority,
			SeasonStart: s.SeasonStart,
			SeasonEnd:   s.SeasonEnd,
		})
	}
	return configs, nil
}
