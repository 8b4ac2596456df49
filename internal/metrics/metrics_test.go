package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecordSourceAttempt(t *testing.T) {
	r := NewRecorder()

	r.RecordSourceAttempt("gaa", 120*time.Millisecond, nil)
	r.RecordSourceAttempt("gaa", 80*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot("gaa")
	if snap.Attempts != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.LastLatency != 80*time.Millisecond {
		t.Fatalf("unexpected latency: %s", snap.LastLatency)
	}
}

func TestSnapshotUnknownSource(t *testing.T) {
	r := NewRecorder()
	if snap := r.Snapshot("nope"); snap.Attempts != 0 || snap.Errors != 0 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestNilRecorderSafe(t *testing.T) {
	var r *Recorder
	r.RecordSourceAttempt("gaa", time.Second, nil)
	r.RecordRunCycle(time.Second, nil)
	r.RecordHTTPRequest("GET", "/fixtures", 200, time.Millisecond)
	if snap := r.Snapshot("gaa"); snap.Attempts != 0 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestSetupDisabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestSetupEnabledPrometheusOnly(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		Port:        "0",
		ServiceName: "fixtures-service-test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if shutdown != nil {
			_ = shutdown(context.Background())
		}
	}()

	if rec == nil || handler == nil {
		t.Fatal("expected recorder and prometheus handler")
	}

	// Instrumented paths must not panic.
	rec.RecordHTTPRequest("GET", "/fixtures", 200, 5*time.Millisecond)
	rec.RecordSourceAttempt("gaa", 10*time.Millisecond, nil)
	rec.RecordRunCycle(20*time.Millisecond, errors.New("partial"))
}
