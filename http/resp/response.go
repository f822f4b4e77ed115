package resp

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/logger"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w    http.ResponseWriter
	r    *http.Request
	code int
	data any
}

// Code sets the response status code.
//
// If c is not a valid HTTP status code, ErrInvalid returns.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		if c < 100 || c > 999 {
			return fmt.Errorf("%w: status code %d", ErrInvalid, c)
		}

		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client.
//
// Used with Responder.Json.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
//
// The error is logged through the request-scoped logger if the request carries one.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.requestLogger(r.r).Error(e.Error(), &logger.LogContext{Error: e, Request: r.r})
		}

		r.code = http.StatusInternalServerError
		return nil
	}
}

// requestLogger prefers the logger stashed in the request context over d's own.
// Errors still reach Sentry when d's own logger ships them there.
func (d Responder) requestLogger(r *http.Request) logger.Logger {
	if r == nil || r.Context().Value(birdpass.LoggerKey) == nil {
		return d.logger
	}

	l := logger.New(logger.FromContext(r.Context()), logger.WithSkip(d.logger.Skip()))
	if sl, ok := d.logger.(*logger.SentryLogger); ok {
		return sl.Wrap(l)
	}

	return l
}
