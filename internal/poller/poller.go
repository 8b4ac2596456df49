package poller

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fixtures-service/internal/aggregate"
	"fixtures-service/internal/domain"
	"fixtures-service/internal/logging"
	"fixtures-service/internal/sources"
)

const defaultInterval = 15 * time.Minute

// ViewStore receives each refreshed aggregate view.
type ViewStore interface {
	SetView(view domain.FixturesResponse)
}

// Poller re-runs the aggregation on an interval and keeps the cached view
// warm for the fixtures endpoint.
type Poller struct {
	coordinator *aggregate.Coordinator
	store       ViewStore
	logger      *slog.Logger
	interval    time.Duration
	now         func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(coordinator *aggregate.Coordinator, store ViewStore, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		coordinator: coordinator,
		store:       store,
		logger:      logger,
		interval:    interval,
		now:         time.Now,
		done:        make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "refresh loop started", logging.FieldDurationMS, p.interval.Milliseconds())
		// Initial run to warm the view on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "refresh loop stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "refresh loop stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Status returns a copy of the loop's health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	results := p.coordinator.Run(ctx)
	view := aggregate.BuildResponse(results)
	if p.store != nil {
		p.store.SetView(view)
	}

	if failures := failedSources(results); len(failures) > 0 {
		p.recordFailure(strings.Join(failures, "; "))
	} else {
		p.recordSuccess(start)
	}
	logging.Info(p.logger, "view refreshed",
		logging.FieldCount, domain.FixtureCount(view.Days),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// failedSources collects failure reasons, ignoring out-of-season skips: a
// source that is deliberately dormant should not flip readiness.
func failedSources(results []domain.SourceResult) []string {
	var failures []string
	for _, r := range results {
		if r.Success || r.Error == sources.ErrNotInSeason.Error() {
			continue
		}
		failures = append(failures, r.Sport+": "+r.Error)
	}
	return failures
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(msg string) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	p.status.LastError = msg
}
