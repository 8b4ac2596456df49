package snapshots

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"
)

type record struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

func TestWriteAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	store := NewFSStore(dir)

	in := []record{{Home: "Dublin", Away: "Kerry"}}
	if err := w.WriteRecords("gaa", in); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var out []record
	if err := store.LoadRecords("gaa", &out); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out) != 1 || out[0].Home != "Dublin" {
		t.Fatalf("unexpected records: %+v", out)
	}
}

func TestLoadRecordsMissingFile(t *testing.T) {
	store := NewFSStore(t.TempDir())
	var out []record
	err := store.LoadRecords("gaa", &out)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadRecordsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	if err := w.WriteRecords("gaa", []record{{Home: "Dublin"}}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := os.WriteFile(RecordsPath(dir, "gaa"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupt failed: %v", err)
	}

	var out []record
	if err := NewFSStore(dir).LoadRecords("gaa", &out); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestWriteRecordsNoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	if err := w.WriteRecords("gaa", []record{{Home: "Dublin"}}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := os.Stat(RecordsPath(dir, "gaa") + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatal("temp file left behind")
	}
}

func TestWriteRecordsUpdatesManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	before := time.Now().Add(-time.Minute)
	if err := w.WriteRecords("gaa", []record{{Home: "Dublin"}}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	refreshed := LastRefreshed(dir, "gaa")
	if refreshed.IsZero() || refreshed.Before(before) {
		t.Fatalf("manifest not updated: %v", refreshed)
	}
	if !LastRefreshed(dir, "f1").IsZero() {
		t.Fatal("unexpected entry for unwritten source")
	}
}

func TestWriteRecordsUnchangedPayloadBumpsManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	payload := []record{{Home: "Dublin"}}

	if err := w.WriteRecords("gaa", payload); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	first := LastRefreshed(dir, "gaa")

	time.Sleep(10 * time.Millisecond)
	if err := w.WriteRecords("gaa", payload); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	second := LastRefreshed(dir, "gaa")

	if !second.After(first) {
		t.Fatalf("manifest not bumped: %v vs %v", first, second)
	}
}

func TestWriteRecordsRequiresSource(t *testing.T) {
	w := NewWriter(t.TempDir())
	if err := w.WriteRecords("", nil); err == nil {
		t.Fatal("expected error for empty source")
	}
}
