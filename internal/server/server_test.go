package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fixtures-service/internal/config"
	"fixtures-service/internal/domain"
	"fixtures-service/internal/metrics"
	"fixtures-service/internal/poller"
	"fixtures-service/internal/snapshots"
	"fixtures-service/internal/testutil"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:            "0",
		RefreshInterval: time.Hour,
		SourceTimeout:   time.Second,
		SnapshotDir:     t.TempDir(),
		GAA:             config.GAAConfig{URL: "http://localhost/fixtures", Mode: "snapshot"},
		Metrics:         config.MetricsConfig{Enabled: false},
	}
}

func TestNewWiresDefaultSources(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithMetrics(testConfig(t), logger, metrics.NewRecorder())

	configs := srv.registry.Configs()
	if len(configs) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(configs))
	}
	ids := map[string]bool{}
	for _, cfg := range configs {
		ids[cfg.ID] = true
	}
	for _, id := range []string{"gaa", "f1", "soccer"} {
		if !ids[id] {
			t.Fatalf("missing source %s", id)
		}
	}
}

func TestHandlerServesPublicRoutes(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithMetrics(testConfig(t), logger, metrics.NewRecorder())

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	// No token configured, so admin routes must not exist.
	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/admin/sources", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestHandlerMountsAdminWithToken(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig(t)
	cfg.AdminToken = "sekrit"
	srv := newServerWithMetrics(cfg, logger, metrics.NewRecorder())

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/admin/sources", nil)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestFixturesAggregatesFromSnapshotSources(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig(t)

	// Seed a GAA snapshot so the source succeeds without a browser.
	writer := snapshots.NewWriter(cfg.SnapshotDir)
	err := writer.WriteRecords("gaa", []map[string]string{
		{"home": "Dublin", "away": "Kerry", "time": "17:00", "date": "2999-01-01"},
	})
	if err != nil {
		t.Fatalf("seed snapshot failed: %v", err)
	}

	srv := newServerWithMetrics(cfg, logger, metrics.NewRecorder())
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/fixtures", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.FixturesResponse
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Sources) == 0 {
		t.Fatal("expected per-source summaries")
	}
	var sawGAA bool
	for _, s := range resp.Sources {
		if s.Name == "GAA" {
			sawGAA = true
			// Between October and December the source skips itself instead.
			if s.Success && s.FixtureCount != 1 {
				t.Fatalf("unexpected GAA summary: %+v", s)
			}
		}
	}
	if !sawGAA {
		t.Fatal("GAA summary missing")
	}
}

type stubServer struct {
	shutdowns int
}

func (s *stubServer) ListenAndServe() error { return http.ErrServerClosed }
func (s *stubServer) Shutdown(ctx context.Context) error {
	s.shutdowns++
	return nil
}
func (s *stubServer) Addr() string          { return ":0" }
func (s *stubServer) Handler() http.Handler { return http.NewServeMux() }

type stubPoller struct {
	started, stopped bool
}

func (p *stubPoller) Start(ctx context.Context)      { p.started = true }
func (p *stubPoller) Stop(ctx context.Context) error { p.stopped = true; return nil }
func (p *stubPoller) Status() poller.Status          { return poller.Status{} }

func TestRunShutsDownGracefully(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	httpSrv := &stubServer{}
	plr := &stubPoller{}
	srv := newServerWithDeps(testConfig(t), logger, httpSrv, plr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancellation")
	}

	if !plr.started || !plr.stopped {
		t.Fatalf("poller lifecycle incomplete: %+v", plr)
	}
	if httpSrv.shutdowns != 1 {
		t.Fatalf("expected 1 shutdown, got %d", httpSrv.shutdowns)
	}
}
