package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// callerFrames is the number of frames between runtime.Callers
// and the code calling a Logger method.
const callerFrames = 3

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	// Slog exposes the underlying [*log/slog.Logger].
	Slog() *slog.Logger
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

// AppLogger implements Logger using a [*log/slog.Logger].
type AppLogger struct {
	l    *slog.Logger
	skip int
}

// New constructs an AppLogger around sl.
// If sl is nil, [log/slog.Default] is used.
func New(sl *slog.Logger, opts ...LoggerOptFn) SkipLogger {
	if sl == nil {
		sl = slog.Default()
	}

	l := &AppLogger{l: sl}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
//
// Use Skip to get the current skip amount
// when needing to add to it with AddSkip.
func (l *AppLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *AppLogger) Debug(msg string, ctx *LogContext) { l.log(slog.LevelDebug, msg, ctx) }

// Error writes an error log.
func (l *AppLogger) Error(msg string, ctx *LogContext) { l.log(slog.LevelError, msg, ctx) }

// Info writes an info log.
func (l *AppLogger) Info(msg string, ctx *LogContext) { l.log(slog.LevelInfo, msg, ctx) }

// Warn writes a warning log.
func (l *AppLogger) Warn(msg string, ctx *LogContext) { l.log(slog.LevelWarn, msg, ctx) }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *AppLogger) Skip() int { return l.skip }

// Slog returns the [*log/slog.Logger] AppLogger writes to.
func (l *AppLogger) Slog() *slog.Logger { return l.l }

// log builds the record by hand so the source attribute
// points at the caller of the AppLogger method.
func (l *AppLogger) log(level slog.Level, msg string, ctx *LogContext) {
	bg := context.Background()
	if !l.l.Enabled(bg, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(callerFrames+l.skip, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	if ctx != nil {
		r.AddAttrs(ctx.attrs()...)
	}

	_ = l.l.Handler().Handle(bg, r)
}
