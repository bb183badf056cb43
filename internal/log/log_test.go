package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewFormattedLoggerWritesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := NewFormattedLogger(&buf)
	l.Info("hello", "KEY", "value")

	out := buf.String()

	for _, want := range []string{"LEVEL", "INFO", "MESSAGE", "hello", "KEY", "value"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHandlerEnabledRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	h := NewHandler(&buf)
	h.opts = &slog.HandlerOptions{Level: slog.LevelWarn}

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should not be enabled at warn level")
	}

	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestHandlerGroupAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := slog.New(NewHandler(&buf))
	l.Info("tick", Group("STATE", Int("PC", 64)))

	out := buf.String()

	if !strings.Contains(out, "STATE") || !strings.Contains(out, "PC") {
		t.Errorf("output missing grouped attrs:\n%s", out)
	}
}

func TestLogLevelVar(t *testing.T) {
	t.Parallel()

	var lvl slog.LevelVar

	lvl.Set(Warn)

	if lvl.Level() != Warn {
		t.Errorf("level want: %v, got: %v", Warn, lvl.Level())
	}
}
