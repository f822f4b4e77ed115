package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/birdpass"
)

// ReportPanic recovers panics, reports them to Sentry and panics again,
// leaving LogRequest to answer the request.
//
// If env does not report errors, NoopAdapter returns and this middleware does nothing.
func ReportPanic(env birdpass.Environment) Adapter {
	if !env.ReportsErrors() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{Repanic: true})

	return func(h http.Handler) http.Handler { return sh.Handle(h) }
}
