package aggregate

import (
	"context"
	"errors"
	"testing"
	"time"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/metrics"
	"fixtures-service/internal/sources"
	"fixtures-service/internal/testutil"
)

func newCoordinator(registry *sources.Registry) (*Coordinator, *metrics.Recorder) {
	logger, _ := testutil.NewBufferLogger()
	recorder := metrics.NewRecorder()
	return NewCoordinator(registry, logger, recorder, time.Second), recorder
}

func TestRunIsolatesFailures(t *testing.T) {
	day := testutil.SampleDay("Saturday", "2025-06-14",
		testutil.SampleFixture("GAA Football", "Dublin v Kerry", "17:00", "2025-06-14"))

	registry := sources.NewRegistry()
	registry.Add(domain.SourceConfig{ID: "gaa", Name: "GAA", Enabled: true, Priority: 1},
		testutil.GoodExtractor{SourceName: "GAA", Days: []domain.DayFixtures{day}})
	registry.Add(domain.SourceConfig{ID: "f1", Name: "F1", Enabled: true, Priority: 2},
		testutil.ErrExtractor{SourceName: "F1", Err: errors.New("feed down")})

	c, _ := newCoordinator(registry)
	results := c.Run(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Success || results[0].Sport != "GAA" {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[1].Success || results[1].Error != "feed down" {
		t.Fatalf("unexpected second result: %+v", results[1])
	}
	if len(results[1].Fixtures) != 0 {
		t.Fatal("failed result carries fixtures")
	}
}

func TestRunSurvivesPanickingExtractor(t *testing.T) {
	registry := sources.NewRegistry()
	registry.Add(domain.SourceConfig{ID: "gaa", Name: "GAA", Enabled: true, Priority: 1},
		testutil.PanicExtractor{SourceName: "GAA"})
	registry.Add(domain.SourceConfig{ID: "f1", Name: "F1", Enabled: true, Priority: 2},
		testutil.GoodExtractor{SourceName: "F1"})

	c, _ := newCoordinator(registry)
	results := c.Run(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Success {
		t.Fatal("panicking source reported success")
	}
	if !results[1].Success {
		t.Fatal("panic stopped the run")
	}
}

func TestRunSkipsOutOfSeasonWithoutExtracting(t *testing.T) {
	registry := sources.NewRegistry()
	registry.Add(domain.SourceConfig{ID: "gaa", Name: "GAA", Enabled: true, Priority: 1},
		testutil.DormantExtractor{SourceName: "GAA"})

	c, recorder := newCoordinator(registry)
	results := c.Run(context.Background())

	if results[0].Success || results[0].Error != sources.ErrNotInSeason.Error() {
		t.Fatalf("unexpected result: %+v", results[0])
	}
	if recorder.SourceAttempts("gaa") != 0 {
		t.Fatal("out-of-season skip recorded as an attempt")
	}
}

func TestRunPriorityOrder(t *testing.T) {
	registry := sources.NewRegistry()
	registry.Add(domain.SourceConfig{ID: "f1", Name: "F1", Enabled: true, Priority: 2},
		testutil.GoodExtractor{SourceName: "F1"})
	registry.Add(domain.SourceConfig{ID: "gaa", Name: "GAA", Enabled: true, Priority: 1},
		testutil.GoodExtractor{SourceName: "GAA"})

	c, _ := newCoordinator(registry)
	results := c.Run(context.Background())
	if results[0].Sport != "GAA" || results[1].Sport != "F1" {
		t.Fatalf("unexpected order: %s, %s", results[0].Sport, results[1].Sport)
	}
}

func TestRunMissingExtractor(t *testing.T) {
	registry := sources.NewRegistry()
	registry.Add(domain.SourceConfig{ID: "rugby", Name: "Rugby", Enabled: true, Priority: 1}, nil)

	c, _ := newCoordinator(registry)
	results := c.Run(context.Background())
	if results[0].Success || results[0].Error != "no extractor registered" {
		t.Fatalf("unexpected result: %+v", results[0])
	}
}

func TestRunRecordsAttempts(t *testing.T) {
	registry := sources.NewRegistry()
	registry.Add(domain.SourceConfig{ID: "f1", Name: "F1", Enabled: true, Priority: 1},
		testutil.ErrExtractor{SourceName: "F1", Err: errors.New("boom")})

	c, recorder := newCoordinator(registry)
	c.Run(context.Background())

	if recorder.SourceAttempts("f1") != 1 || recorder.SourceErrors("f1") != 1 {
		t.Fatalf("attempt not recorded: %+v", recorder.Snapshot("f1"))
	}
}

func TestRunSingleUnknownSource(t *testing.T) {
	c, _ := newCoordinator(sources.NewRegistry())
	_, err := c.RunSingle(context.Background(), "rugby")
	if !errors.Is(err, sources.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestRunSingleIgnoresEnabledFlag(t *testing.T) {
	registry := sources.NewRegistry()
	registry.Add(domain.SourceConfig{ID: "soccer", Name: "Soccer", Enabled: false, Priority: 1},
		testutil.GoodExtractor{SourceName: "Soccer"})

	c, _ := newCoordinator(registry)
	result, err := c.RunSingle(context.Background(), "soccer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("disabled source should still be testable: %+v", result)
	}
}
