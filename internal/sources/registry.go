package sources

import (
	"sort"
	"sync"

	"fixtures-service/internal/domain"
)

// ActiveSource pairs a source's configuration with its extractor.
type ActiveSource struct {
	ID        string
	Config    domain.SourceConfig
	Extractor Extractor
}

// Registry owns per-source configuration and the id->Extractor mapping for
// the process lifetime. It is constructed at the composition point and
// injected; there is no package-level registry.
type Registry struct {
	mu         sync.RWMutex
	configs    map[string]domain.SourceConfig
	extractors map[string]Extractor
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		configs:    make(map[string]domain.SourceConfig),
		extractors: make(map[string]Extractor),
	}
}

// Add registers a source. Re-adding an id replaces its entry.
func (r *Registry) Add(cfg domain.SourceConfig, extractor Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[cfg.ID] = cfg
	r.extractors[cfg.ID] = extractor
}

// ListActive returns the enabled sources ordered by ascending priority, ties
// broken by id so a run's ordering is deterministic. The returned slice is a
// snapshot; toggles applied afterwards do not affect it.
func (r *Registry) ListActive() []ActiveSource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]ActiveSource, 0, len(r.configs))
	for id, cfg := range r.configs {
		if !cfg.Enabled {
			continue
		}
		active = append(active, ActiveSource{ID: id, Config: cfg, Extractor: r.extractors[id]})
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].Config.Priority != active[j].Config.Priority {
			return active[i].Config.Priority < active[j].Config.Priority
		}
		return active[i].ID < active[j].ID
	})
	return active
}

// SetEnabled toggles a source. Unknown ids are a silent no-op: the
// administrative caller only ever offers ids it listed itself.
func (r *Registry) SetEnabled(id string, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, ok := r.configs[id]
	if !ok {
		return
	}
	cfg.Enabled = enabled
	r.configs[id] = cfg
}

// Get returns the configuration for one source.
func (r *Registry) Get(id string) (domain.SourceConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[id]
	return cfg, ok
}

// Extractor returns the extractor registered for one source.
func (r *Registry) Extractor(id string) (Extractor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ex, ok := r.extractors[id]
	return ex, ok
}

// Configs lists every registered source, enabled or not, in priority order.
func (r *Registry) Configs() []domain.SourceConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	configs := make([]domain.SourceConfig, 0, len(r.configs))
	for _, cfg := range r.configs {
		configs = append(configs, cfg)
	}
	sort.Slice(configs, func(i, j int) bool {
		if configs[i].Priority != configs[j].Priority {
			return configs[i].Priority < configs[j].Priority
		}
		return configs[i].ID < configs[j].ID
	})
	return configs
}
