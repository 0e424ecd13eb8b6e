package render

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	mandel "github.com/marben/simd_mandel"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	e := mustNew(t, Config{Resolution: mandel.Resolution{X: 8, Y: 2}, Frame: mandel.DefaultFrame, MaxIterations: 8, Threads: 1})
	e.Render()

	out := buf.String()
	for _, want := range []string{"render started", "resolution=8x2", "strategy=work-stealing", "render finished"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
