package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerAttachesServiceFields(t *testing.T) {
	// NewLogger writes to stdout; build the equivalent handler over a buffer
	// to assert the field attachment behavior.
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil)).
		With(slog.String(FieldService, "fixtures-service"), slog.String(FieldVersion, "dev"))
	logger.Info("boot")

	out := buf.String()
	if !strings.Contains(out, "service=fixtures-service") || !strings.Contains(out, "version=dev") {
		t.Fatalf("missing fields: %s", out)
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx, nil) != logger {
		t.Fatal("logger not returned from context")
	}
}

func TestFromContextFallback(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&buf, nil))

	if FromContext(context.Background(), fallback) != fallback {
		t.Fatal("expected fallback for empty context")
	}
	if FromContext(nil, fallback) != fallback {
		t.Fatal("expected fallback for nil context")
	}
}

func TestNilSafeHelpers(t *testing.T) {
	// Must not panic.
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", nil)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Error(logger, "failed", context.Canceled)
	if !strings.Contains(buf.String(), "context canceled") {
		t.Fatalf("error not logged: %s", buf.String())
	}
}
