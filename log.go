package birdpass

import (
	"log/slog"
	"net/url"
)

const (
	LogKindKey = "kind"
	LogMaskVal = "xxxxxx"
)

var (
	AppLogKind  = slog.StringValue("app")
	HTTPLogKind = slog.StringValue("http")
	CLILogKind  = slog.StringValue("cli")
)

// Mask replaces every value under key with [LogMaskVal].
// Multiple values collapse into one.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals[key] = []string{LogMaskVal}
}
