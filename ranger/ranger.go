package ranger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/corpus"
	"github.com/xy-planning-network/birdpass/http/handler"
	"github.com/xy-planning-network/birdpass/http/resp"
	"github.com/xy-planning-network/birdpass/http/router"
	"github.com/xy-planning-network/birdpass/logger"
	"github.com/xy-planning-network/birdpass/passphrase"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// A Ranger manages and exposes all components of a birdpass server to one another.
type Ranger struct {
	*resp.Responder
	*router.Router

	cfg     Config
	corpus  *corpus.Corpus
	ctx     context.Context
	gen     *passphrase.Generator
	genOpts []passphrase.GeneratorOptFn
	httpLog *slog.Logger
	l       logger.SkipLogger
	logOut  io.Writer
	srv     *http.Server

	shutdown     sync.Once
	shutdownErrs error
}

// New constructs a Ranger from the provided options.
// The Config read from the environment applies first, followed by the options passed into New.
// Anything the options leave unset is then built from the Config.
//
// Unless WithCorpus is passed in, New extracts the word list if it does not exist yet and loads it.
// Failing either is an error: no server should start without a corpus.
func New(opts ...RangerOption) (*Ranger, error) {
	r := &Ranger{cfg: NewConfig(), ctx: context.Background(), logOut: os.Stdout}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("%w: %s", birdpass.ErrBadConfig, err)
		}
	}

	if r.l == nil {
		r.l = defaultAppLogger(r.cfg, r.logOut)
	}

	if r.httpLog == nil {
		r.httpLog = defaultHTTPLogger(r.cfg, r.logOut)
	}

	if r.corpus == nil {
		c, err := corpus.Prepare(r.cfg.Corpus, r.l)
		if err != nil {
			return nil, fmt.Errorf("could not prepare corpus: %w", err)
		}

		r.corpus = c
	}

	store, err := defaultVisitorStore(r.cfg, r.l)
	if err != nil {
		return nil, err
	}

	r.gen = passphrase.NewGenerator(r.corpus, r.genOpts...)
	r.Responder = defaultResponder(r.l)
	r.Router = defaultRouter(
		r.cfg.Env,
		handler.New(r.gen, r.Responder),
		defaultMiddlewares(r.cfg, r.httpLog, store),
	)

	if r.srv == nil {
		r.srv = defaultServer(r.ctx, r.cfg)
	}
	r.srv.Handler = r.Router

	r.l.Debug(fmt.Sprintf("serving %d words in %s", r.corpus.Len(), r.cfg.Env), nil)

	return r, nil
}

// Config returns the Config the Ranger was built from.
func (r *Ranger) Config() Config { return r.cfg }

// Corpus returns the words passphrases are drawn from.
func (r *Ranger) Corpus() *corpus.Corpus { return r.corpus }

// EmitLogger returns the application logger.
func (r *Ranger) EmitLogger() logger.Logger { return r.l }

// Generator returns the passphrase generator handlers share.
func (r *Ranger) Generator() *passphrase.Generator { return r.gen }

// Guide begins the web server.
//
// These, the context passed to WithContext, and (*Ranger).Shutdown, stop Guide:
//
//   - os.Interrupt
//   - syscall.SIGHUP
//   - syscall.SIGQUIT
//   - syscall.SIGTERM
//
// Guide returns an error if the server cannot listen or cannot shut down.
func (r *Ranger) Guide() error {
	ctx, stop := signal.NotifyContext(r.ctx, os.Interrupt, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := new(errgroup.Group)
	g.Go(func() error {
		defer cancel()

		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), &logger.LogContext{Error: err})
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return r.Shutdown()
	})

	return g.Wait()
}

// Shutdown shuts down the web server, waiting on in-flight requests
// for at most five seconds.
//
// Shutdown is safe to call more than once.
func (r *Ranger) Shutdown() error {
	r.shutdown.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		r.l.Info("shutting down web server", nil)
		if err := r.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.shutdownErrs = fmt.Errorf("could not shutdown: %w", err)
			return
		}

		if sl, ok := r.l.(*logger.SentryLogger); ok {
			sl.Flush()
		}

		r.l.Info("web server shutdown successfully", nil)
	})

	return r.shutdownErrs
}
