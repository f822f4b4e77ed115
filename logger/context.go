package logger

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/xy-planning-network/birdpass"
)

var _ slog.LogValuer = LogContext{}

// A LogContext provides additional information and configuration
// for a [Logger] method that cannot be tersely captured in the message itself.
type LogContext struct {
	// Caller overrides the caller file and line number with the provided value.
	//
	// Caller helps goroutines identify the callers of the process that spawned it.
	Caller string

	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the *http.Request that may or may not have been open during the logging event.
	Request *http.Request
}

// LogValue implements [log/slog.LogValuer],
// eliminating zero-value fields.
func (lc LogContext) LogValue() slog.Value { return slog.GroupValue(lc.attrs()...) }

func (lc LogContext) attrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 4)
	if lc.Caller != "" {
		attrs = append(attrs, slog.String("caller", lc.Caller))
	}

	if lc.Error != nil {
		attrs = append(attrs, slog.String("error", lc.Error.Error()))
	}

	if lc.Request != nil {
		attrs = append(attrs, slog.Group(
			"request",
			slog.String("method", lc.Request.Method),
			slog.String("url", lc.Request.URL.String()),
		))
	}

	if len(lc.Data) > 0 {
		attrs = append(attrs, slog.Any("data", lc.Data))
	}

	return attrs
}

// CurrentCaller retrieves the caller for the caller of CurrentCaller,
// formatted for using as a value in LogContext.Caller.
//
//	myFunc() {		<- returns this caller
//		func() {
//			CurrentCaller()
//		}()
//	}
func CurrentCaller() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d", immediateFilepath(file), line)
}

// NewContext stashes the request-scoped sl in ctx.
func NewContext(ctx context.Context, sl *slog.Logger) context.Context {
	return context.WithValue(ctx, birdpass.LoggerKey, sl)
}

// FromContext retrieves the request-scoped logger stashed by NewContext
// or [log/slog.Default] if none was.
func FromContext(ctx context.Context) *slog.Logger {
	if sl, ok := ctx.Value(birdpass.LoggerKey).(*slog.Logger); ok && sl != nil {
		return sl
	}

	return slog.Default()
}

// immediateFilepath trims fp down to the file and the directory it is in, e.g.:
//
//	/home/birdpass/corpus/extract.go => corpus/extract.go
func immediateFilepath(fp string) string {
	dir, file := filepath.Split(fp)
	return filepath.Join(filepath.Base(dir), file)
}
