package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/logging"
	"fixtures-service/internal/metrics"
	"fixtures-service/internal/sources"
)

// Coordinator runs one aggregation pass across all active sources, isolating
// failures so a broken source never blocks the rest.
type Coordinator struct {
	registry      *sources.Registry
	logger        *slog.Logger
	metrics       *metrics.Recorder
	sourceTimeout time.Duration
}

// NewCoordinator constructs a Coordinator. sourceTimeout bounds each
// extraction attempt; zero means no per-source deadline.
func NewCoordinator(registry *sources.Registry, logger *slog.Logger, recorder *metrics.Recorder, sourceTimeout time.Duration) *Coordinator {
	return &Coordinator{
		registry:      registry,
		logger:        logger,
		metrics:       recorder,
		sourceTimeout: sourceTimeout,
	}
}

// Run attempts every active source exactly once, strictly sequentially in
// priority order, and returns one result per source. The active list is
// snapshotted up front; toggles applied mid-run do not affect this run.
func (c *Coordinator) Run(ctx context.Context) []domain.SourceResult {
	start := time.Now()
	active := c.registry.ListActive()
	logging.Info(c.logger, "aggregation run starting", logging.FieldCount, len(active))

	results := make([]domain.SourceResult, 0, len(active))
	for _, src := range active {
		results = append(results, c.attempt(ctx, src))
	}

	var runErr error
	for _, r := range results {
		if !r.Success {
			runErr = fmt.Errorf("%s: %s", r.Sport, r.Error)
			break
		}
	}
	c.metrics.RecordRunCycle(time.Since(start), runErr)
	logging.Info(c.logger, "aggregation run complete",
		logging.FieldCount, len(results),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return results
}

// RunSingle attempts one registered source on demand, without running the
// others. Unknown identifiers return ErrSourceNotFound. The enabled flag is
// ignored here so a disabled source can still be exercised from the admin UI.
func (c *Coordinator) RunSingle(ctx context.Context, id string) (domain.SourceResult, error) {
	cfg, ok := c.registry.Get(id)
	if !ok {
		return domain.SourceResult{}, sources.ErrSourceNotFound
	}
	extractor, ok := c.registry.Extractor(id)
	if !ok {
		return domain.SourceResult{}, sources.ErrSourceNotFound
	}
	return c.attempt(ctx, sources.ActiveSource{ID: id, Config: cfg, Extractor: extractor}), nil
}

func (c *Coordinator) attempt(ctx context.Context, src sources.ActiveSource) domain.SourceResult {
	name := src.Config.Name
	if src.Extractor == nil {
		return domain.NewSourceResult(name, nil, false, "no extractor registered")
	}

	if !src.Extractor.IsActive() {
		logging.Info(c.logger, "source skipped", logging.FieldSource, src.ID, "reason", sources.ErrNotInSeason)
		return domain.NewSourceResult(name, nil, false, sources.ErrNotInSeason.Error())
	}

	start := time.Now()
	days, err := c.extract(ctx, src.Extractor)
	c.metrics.RecordSourceAttempt(src.ID, time.Since(start), err)
	if err != nil {
		logging.Warn(c.logger, "source extraction failed",
			logging.FieldSource, src.ID,
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
			"error", err,
		)
		return domain.NewSourceResult(name, nil, false, err.Error())
	}

	logging.Info(c.logger, "source extracted",
		logging.FieldSource, src.ID,
		logging.FieldCount, domain.FixtureCount(days),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return domain.NewSourceResult(name, days, true, "")
}

// extract guards one extractor invocation: it applies the per-source
// deadline and converts a panic from a non-conforming extractor into an
// error so the run continues.
func (c *Coordinator) extract(ctx context.Context, extractor sources.Extractor) (days []domain.DayFixtures, err error) {
	if c.sourceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.sourceTimeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			days = nil
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()

	return extractor.Extract(ctx)
}
