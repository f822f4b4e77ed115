package ranger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/corpus"
	"github.com/xy-planning-network/birdpass/logger"
	"github.com/xy-planning-network/birdpass/passphrase"
)

// A RangerOption configures a *Ranger under construction.
// Options run before New fills in defaults for anything left unset.
type RangerOption func(rng *Ranger) error

// WithConfig replaces the Config read from the environment.
func WithConfig(cfg Config) RangerOption {
	return func(rng *Ranger) error {
		rng.cfg = cfg
		return nil
	}
}

// WithContext exposes the provided context.Context to the birdpass server.
// The server shuts down when ctx is done.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) error {
		if ctx == nil {
			return fmt.Errorf("%w: nil context", birdpass.ErrMissingData)
		}

		rng.ctx = ctx
		return nil
	}
}

// WithCorpus serves passphrases from an already loaded corpus,
// skipping extracting and loading the word list.
func WithCorpus(c *corpus.Corpus) RangerOption {
	return func(rng *Ranger) error {
		if c == nil {
			return fmt.Errorf("%w: nil corpus", birdpass.ErrMissingData)
		}

		rng.corpus = c
		return nil
	}
}

// WithEnv casts the provided string into a valid Environment
// and overrides the one read from the ENVIRONMENT environment variable.
func WithEnv(env string) RangerOption {
	return func(rng *Ranger) error {
		e := birdpass.Environment(env)
		if err := e.Valid(); err != nil {
			return fmt.Errorf("%w: environment %q", err, env)
		}

		rng.cfg.Env = e
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the birdpass server.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", birdpass.ErrMissingData)
		}

		if sl, ok := l.(logger.SkipLogger); ok {
			rng.l = sl
			return nil
		}

		rng.l = logger.New(l.Slog())
		return nil
	}
}

// WithHTTPLogger sets the [*log/slog.Logger] requests are logged with.
func WithHTTPLogger(sl *slog.Logger) RangerOption {
	return func(rng *Ranger) error {
		rng.httpLog = sl
		return nil
	}
}

// WithLogOutput redirects the default loggers to w.
func WithLogOutput(w io.Writer) RangerOption {
	return func(rng *Ranger) error {
		rng.logOut = w
		return nil
	}
}

// WithSource swaps the randomness behind every passphrase.
func WithSource(fn func() passphrase.Source) RangerOption {
	return func(rng *Ranger) error {
		rng.genOpts = append(rng.genOpts, passphrase.WithSource(fn))
		return nil
	}
}

// WithServer exposes the *http.Server to the birdpass server.
// The Ranger sets its Handler.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) error {
		if s == nil {
			return fmt.Errorf("%w: nil server", birdpass.ErrMissingData)
		}

		rng.srv = s
		return nil
	}
}
