package logger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/xy-planning-network/birdpass"
)

// FlushTimeout bounds how long Flush waits on events queued for Sentry.
const FlushTimeout = 2 * time.Second

// A SentryLogger logs through the wrapped Logger
// and ships errors logged at warn or above to Sentry.
type SentryLogger struct {
	l SkipLogger
}

// NewSentryLogger initializes the Sentry client and wraps l.
// If Sentry cannot be initialized, the failure is logged and l returns.
func NewSentryLogger(env birdpass.Environment, l SkipLogger, dsn string) SkipLogger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  env.String(),
		IgnoreErrors: []string{"write: broken pipe"},
	})
	if err != nil {
		l.Error(fmt.Sprintf("unable to init Sentry: %s", err), nil)
		return l
	}

	return &SentryLogger{l: l.AddSkip(l.Skip() + 1)}
}

// Wrap ships errors logged through l to Sentry as well.
// Sentry must already be initialized by NewSentryLogger.
func (sl *SentryLogger) Wrap(l SkipLogger) *SentryLogger { return &SentryLogger{l: l} }

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
func (sl *SentryLogger) AddSkip(i int) SkipLogger {
	return &SentryLogger{l: sl.l.AddSkip(i)}
}

// Debug writes a debug log.
func (sl *SentryLogger) Debug(msg string, ctx *LogContext) { sl.l.Debug(msg, ctx) }

// Error writes an error log and sends it to Sentry.
func (sl *SentryLogger) Error(msg string, ctx *LogContext) {
	sl.l.Error(msg, ctx)
	sl.send(sentry.LevelError, ctx)
}

// Info writes an info log.
func (sl *SentryLogger) Info(msg string, ctx *LogContext) { sl.l.Info(msg, ctx) }

// Warn writes a warning log and sends it to Sentry.
func (sl *SentryLogger) Warn(msg string, ctx *LogContext) {
	sl.l.Warn(msg, ctx)
	sl.send(sentry.LevelWarning, ctx)
}

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (sl *SentryLogger) Skip() int { return sl.l.Skip() }

// Slog returns the [*log/slog.Logger] the wrapped Logger writes to.
func (sl *SentryLogger) Slog() *slog.Logger { return sl.l.Slog() }

// Flush waits for queued events to be delivered to Sentry.
func (sl *SentryLogger) Flush() bool { return sentry.Flush(FlushTimeout) }

// send ships the LogContext.Error to Sentry,
// including any additional data from LogContext.
func (sl *SentryLogger) send(level sentry.Level, ctx *LogContext) {
	if ctx == nil || ctx.Error == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		if ctx.Request != nil {
			scope.SetRequest(ctx.Request)
		}

		if ctx.Data != nil {
			scope.SetExtra("data", ctx.Data)
		}

		scope.SetLevel(level)
		sentry.CaptureException(ctx.Error)
	})
}
