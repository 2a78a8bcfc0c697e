package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("rendered") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("reading diagram") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("reading diagram") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("could not open viewer") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output at info level: %q", buf.String())
	}
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug output missing after SetLogLevel: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	if prog.elapsed() < 0 {
		t.Errorf("elapsed() = %v, want non-negative", prog.elapsed())
	}

	prog.done("Rendered diagram", "files", 2)
	out := buf.String()
	for _, want := range []string{"Rendered diagram", "elapsed=", "files=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output %q missing %q", out, want)
		}
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}
