package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps, writing to w and
// filtering below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times an operation and logs its completion.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// elapsed returns the time since the progress was created, rounded to the
// millisecond.
func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

// done logs msg with the elapsed time and any extra key-value pairs, for
// example: "Rendered diagram elapsed=12ms files=2".
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg, append([]any{"elapsed", p.elapsed()}, keyvals...)...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
