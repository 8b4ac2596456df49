package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"fixtures-service/internal/aggregate"
	"fixtures-service/internal/domain"
	"fixtures-service/internal/metrics"
	"fixtures-service/internal/sources"
	"fixtures-service/internal/testutil"
)

type captureStore struct {
	views []domain.FixturesResponse
}

func (s *captureStore) SetView(view domain.FixturesResponse) {
	s.views = append(s.views, view)
}

func coordinatorWith(extractor sources.Extractor) *aggregate.Coordinator {
	logger, _ := testutil.NewBufferLogger()
	registry := sources.NewRegistry()
	registry.Add(domain.SourceConfig{ID: "gaa", Name: "GAA", Enabled: true, Priority: 1}, extractor)
	return aggregate.NewCoordinator(registry, logger, metrics.NewRecorder(), time.Second)
}

func TestRefreshStoresView(t *testing.T) {
	day := testutil.SampleDay("Saturday", "2025-06-14",
		testutil.SampleFixture("GAA Football", "Dublin v Kerry", "17:00", "2025-06-14"))
	store := &captureStore{}
	logger, _ := testutil.NewBufferLogger()
	p := New(coordinatorWith(testutil.GoodExtractor{SourceName: "GAA", Days: []domain.DayFixtures{day}}), store, logger, time.Minute)

	p.refreshOnce(context.Background())

	if len(store.views) != 1 {
		t.Fatalf("expected 1 stored view, got %d", len(store.views))
	}
	if domain.FixtureCount(store.views[0].Days) != 1 {
		t.Fatalf("unexpected view: %+v", store.views[0])
	}

	status := p.Status()
	if !status.IsReady() || status.ConsecutiveFailures != 0 {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestRefreshFailureTracksStatus(t *testing.T) {
	store := &captureStore{}
	logger, _ := testutil.NewBufferLogger()
	p := New(coordinatorWith(testutil.ErrExtractor{SourceName: "GAA", Err: errors.New("feed down")}), store, logger, time.Minute)

	p.refreshOnce(context.Background())

	status := p.Status()
	if status.IsReady() {
		t.Fatal("expected not ready after failure with no prior success")
	}
	if status.ConsecutiveFailures != 1 || status.LastError == "" {
		t.Fatalf("unexpected status: %+v", status)
	}
	// A failing run still publishes the view so the summary is visible.
	if len(store.views) != 1 {
		t.Fatalf("expected view published, got %d", len(store.views))
	}
}

func TestRefreshIgnoresOutOfSeasonSkips(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	p := New(coordinatorWith(testutil.DormantExtractor{SourceName: "GAA"}), &captureStore{}, logger, time.Minute)

	p.refreshOnce(context.Background())

	status := p.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("dormant source counted as failure: %+v", status)
	}
	if !status.IsReady() {
		t.Fatal("expected ready when only dormant sources are skipped")
	}
}

func TestStatusReadiness(t *testing.T) {
	var s Status
	if s.IsReady() {
		t.Fatal("zero status should not be ready")
	}
	s.LastSuccess = time.Now()
	if !s.IsReady() {
		t.Fatal("expected ready after success")
	}
	s.ConsecutiveFailures = 3
	if s.IsReady() {
		t.Fatal("expected not ready after repeated failures")
	}
}

func TestStartStopIdempotent(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	p := New(coordinatorWith(testutil.GoodExtractor{SourceName: "GAA"}), &captureStore{}, logger, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop failed: %v", err)
	}
}
