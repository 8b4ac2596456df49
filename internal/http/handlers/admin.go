package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/http/requestutil"
	"fixtures-service/internal/sources"
	"fixtures-service/internal/sources/gaa"
)

// RecordRenderer fetches raw fixture records from the upstream page.
type RecordRenderer interface {
	Records(ctx context.Context) ([]gaa.RawRecord, error)
}

// RecordWriter persists raw records for later snapshot-backed extraction.
type RecordWriter interface {
	WriteRecords(source string, payload any) error
}

// AdminHandler serves the operator endpoints. Every route requires the
// configured bearer token.
type AdminHandler struct {
	registry *sources.Registry
	runner   Runner
	renderer RecordRenderer
	writer   RecordWriter
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(registry *sources.Registry, runner Runner, renderer RecordRenderer, writer RecordWriter, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		registry: registry,
		runner:   runner,
		renderer: renderer,
		writer:   writer,
		token:    token,
		logger:   logger,
	}
}

// ListSources returns every registered source config in priority order.
func (h *AdminHandler) ListSources(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sources": h.registry.Configs(),
	}, h.logger)
}

// ToggleSource flips a source's enabled flag and returns the updated config.
func (h *AdminHandler) ToggleSource(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	id := chi.URLParam(r, "id")
	cfg, ok := h.registry.Get(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "source not found", h.logger)
		return
	}
	h.registry.SetEnabled(id, !cfg.Enabled)
	updated, _ := h.registry.Get(id)

	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Info("source toggled",
			"source", id,
			"enabled", updated.Enabled,
			"client_ip", requestutil.ClientIP(r),
		)
	}
	writeJSON(w, http.StatusOK, map[string]any{"source": updated}, h.logger)
}

// TestSource runs a single source end to end, ignoring its enabled flag,
// and reports the outcome without touching the cached view.
func (h *AdminHandler) TestSource(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	id := chi.URLParam(r, "id")
	result, err := h.runner.RunSingle(r.Context(), id)
	if err != nil {
		if errors.Is(err, sources.ErrSourceNotFound) {
			writeError(w, r, http.StatusNotFound, "source not found", h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	body := map[string]any{
		"source":       id,
		"success":      result.Success,
		"fixtureCount": domain.FixtureCount(result.Fixtures),
		"timestamp":    result.Timestamp,
	}
	if result.Error != "" {
		body["error"] = result.Error
	}
	writeJSON(w, http.StatusOK, body, h.logger)
}

// RefreshGAA renders the upstream fixtures page in a headless browser and
// rewrites the snapshot the GAA extractor reads from.
func (h *AdminHandler) RefreshGAA(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	if h.renderer == nil || h.writer == nil {
		writeError(w, r, http.StatusNotImplemented, "snapshot refresh is not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	records, err := h.renderer.Records(r.Context())
	if err != nil {
		if logger != nil {
			logger.Error("fixtures page render failed", "source", gaa.SourceID, "err", err)
		}
		writeError(w, r, http.StatusBadGateway, "failed to render fixtures page", h.logger)
		return
	}
	if len(records) == 0 {
		writeError(w, r, http.StatusBadGateway, "fixtures page yielded no records", h.logger)
		return
	}
	if err := h.writer.WriteRecords(gaa.SourceID, records); err != nil {
		if logger != nil {
			logger.Error("snapshot write failed", "source", gaa.SourceID, "err", err)
		}
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", h.logger)
		return
	}

	if logger != nil {
		logger.Info("snapshot refreshed",
			"source", gaa.SourceID,
			"count", len(records),
			"client_ip", requestutil.ClientIP(r),
		)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"source":  gaa.SourceID,
		"records": len(records),
		"status":  "ok",
	}, h.logger)
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if h.token == "" {
		writeError(w, r, http.StatusForbidden, "admin endpoints are disabled", h.logger)
		return false
	}
	header := r.Header.Get("Authorization")
	presented, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(h.token)) != 1 {
		if h.logger != nil {
			h.logger.Warn("unauthorized admin request",
				"path", r.URL.Path,
				"client_ip", requestutil.ClientIP(r),
			)
		}
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return false
	}
	return true
}
