package logger

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgWhite),
	slog.LevelInfo:  color.New(color.FgBlue),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed, color.Bold),
}

// ColorizeLevel colors the level attribute of a record.
// It is meant for [log/slog.HandlerOptions.ReplaceAttr].
func ColorizeLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}

	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	c, ok := levelColors[lvl]
	if !ok {
		c = levelColors[slog.LevelError]
		if lvl < slog.LevelError {
			c = levelColors[slog.LevelWarn]
		}
	}

	return slog.String(a.Key, c.Sprint(lvl.String()))
}

// TruncSourceAttr shortens the source attribute of a record
// to the file, the directory it is in and the line number.
func TruncSourceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.SourceKey {
		return a
	}

	src, ok := a.Value.Any().(*slog.Source)
	if !ok || src == nil {
		return a
	}

	return slog.String(a.Key, fmt.Sprintf("%s:%d", immediateFilepath(src.File), src.Line))
}
