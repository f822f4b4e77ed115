package ranger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/lmittmann/tint"
	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/http/handler"
	"github.com/xy-planning-network/birdpass/http/middleware"
	"github.com/xy-planning-network/birdpass/http/resp"
	"github.com/xy-planning-network/birdpass/http/router"
	"github.com/xy-planning-network/birdpass/logger"
)

// defaultAppLogger constructs a [logger.SkipLogger] configured for use in the application.
func defaultAppLogger(cfg Config, output io.Writer) logger.SkipLogger {
	slogger := newSlogger(birdpass.AppLogKind, cfg, output)
	l := logger.New(slogger)
	l.Debug("setting up app logger", nil)
	if cfg.SentryDSN != "" {
		l = logger.NewSentryLogger(cfg.Env, l, cfg.SentryDSN)
		l.Debug("using SentryLogger for app logger", nil)
	}

	slog.SetDefault(slogger)

	return l
}

// defaultHTTPLogger constructs a [*log/slog.Logger] for use in HTTP request logging.
func defaultHTTPLogger(cfg Config, output io.Writer) *slog.Logger {
	sl := newSlogger(birdpass.HTTPLogKind, cfg, output)
	sl.Debug("setting up HTTP router logger")

	return sl
}

// newSlogger toggles constructing the specific [*log/slog.Logger]
// from the given parameters.
func newSlogger(kind slog.Value, cfg Config, out io.Writer) *slog.Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(cfg.LogLevel)

	useJSON := !cfg.Env.IsDevelopment() || cfg.LogJSON
	isHTTP := kind.String() == birdpass.HTTPLogKind.String()

	var handler slog.Handler
	switch {
	case useJSON && !isHTTP:
		opts := &slog.HandlerOptions{
			AddSource:   true,
			Level:       lvl,
			ReplaceAttr: logger.TruncSourceAttr,
		}

		handler = slog.NewJSONHandler(out, opts)

	case !useJSON && !isHTTP:
		opts := &tint.Options{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: "2006-01-02 15:04:05.000",
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.ColorizeLevel(groups, a)
				return logger.TruncSourceAttr(groups, a)
			},
		}
		handler = tint.NewHandler(out, opts)

	case isHTTP && useJSON:
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl})

	case isHTTP && !useJSON:
		handler = tint.NewHandler(out, &tint.Options{
			Level:       lvl,
			TimeFormat:  "15:04:05.000",
			ReplaceAttr: logger.ColorizeLevel,
		})
	}

	handler = handler.WithAttrs([]slog.Attr{
		{Key: birdpass.LogKindKey, Value: kind},
	})

	return slog.New(handler)
}

// defaultMiddlewares assembles the stack every request passes through, outermost first.
func defaultMiddlewares(cfg Config, httpLog *slog.Logger, store middleware.VisitorStore) []middleware.Adapter {
	return []middleware.Adapter{
		middleware.RequestID(),
		middleware.InjectIPAddress(middleware.NewIPResolver(cfg.IPHeaders...)),
		middleware.LogRequest(httpLog),
		middleware.CORS(cfg.CORS),
		middleware.RateLimit(store),
	}
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder(l logger.Logger) *resp.Responder {
	return resp.NewResponder(resp.WithLogger(l))
}

// defaultRouter constructs a [*router.Router] serving h behind mws.
func defaultRouter(env birdpass.Environment, h *handler.Handler, mws []middleware.Adapter) *router.Router {
	route := router.New(env)
	route.OnEveryRequest(mws...)
	route.HandleNotFound(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		http.Error(wx, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}))
	route.HandleMethodNotAllowed(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		http.Error(wx, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
	route.HandleRoutes(h.Routes())

	return route
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context, cfg Config) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

// defaultVisitorStore picks the rate limiter backing store.
// A nil store disables rate limiting.
func defaultVisitorStore(cfg Config, l logger.Logger) (middleware.VisitorStore, error) {
	if cfg.RateLimitRPS <= 0 {
		l.Debug("rate limiting disabled", nil)
		return nil, nil
	}

	if cfg.RedisURL == "" {
		l.Debug("using in-memory visitors for rate limiting", nil)
		return middleware.NewVisitors(cfg.RateLimitRPS, cfg.RateLimitBurst), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", birdpass.ErrBadConfig, redisURLEnvVar, err)
	}

	l.Debug("using redis visitors for rate limiting", nil)
	return middleware.NewRedisVisitors(redis.NewClient(opts), cfg.RateLimitRPS, cfg.RateLimitBurst), nil
}
