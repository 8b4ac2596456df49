package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"fixtures-service/internal/aggregate"
	"fixtures-service/internal/domain"
	"fixtures-service/internal/poller"
)

// Runner runs aggregation passes on demand.
type Runner interface {
	Run(ctx context.Context) []domain.SourceResult
	RunSingle(ctx context.Context, id string) (domain.SourceResult, error)
}

// ViewCache serves and stores the last aggregated view.
type ViewCache interface {
	View() (domain.FixturesResponse, bool)
	SetView(view domain.FixturesResponse)
}

// Handler wires HTTP routes to the aggregation core.
type Handler struct {
	runner   Runner
	cache    ViewCache
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(runner Runner, cache ViewCache, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		runner:   runner,
		cache:    cache,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Fixtures returns the merged, day-grouped view plus the per-source summary.
// Per-source failures never fail the request; they only appear in the
// summary. ?refresh=1 forces a live aggregation run.
func (h *Handler) Fixtures(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	if r.URL.Query().Get("refresh") != "1" && h.cache != nil {
		if view, ok := h.cache.View(); ok {
			if logger != nil {
				logger.Info("served cached fixtures", "count", domain.FixtureCount(view.Days))
			}
			writeJSON(w, http.StatusOK, view, h.logger)
			return
		}
	}

	results := h.runner.Run(r.Context())
	view := aggregate.BuildResponse(results)
	if h.cache != nil {
		h.cache.SetView(view)
	}
	if logger != nil {
		logger.Info("served live fixtures", "count", domain.FixtureCount(view.Days))
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}
