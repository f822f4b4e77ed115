package resp

import (
	"github.com/xy-planning-network/birdpass/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, one writing to [log/slog.Default] will be configured.
func WithLogger(log logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		if log == nil {
			return
		}

		if sl, ok := log.(logger.SkipLogger); ok {
			d.logger = sl
			return
		}

		d.logger = logger.New(log.Slog())
	}
}
