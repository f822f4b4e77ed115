package ranger

import (
	"log/slog"
	"time"

	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/corpus"
	"github.com/xy-planning-network/birdpass/http/middleware"
)

const (
	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLvl   = slog.LevelInfo
	logJSONEnvVar   = "LOG_JSON"
	defaultLogJSON  = false
	sentryDsnEnvVar = "SENTRY_DSN"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":8080"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Corpus defaults
	corpusSourceEnvVar  = "CORPUS_SOURCE_PATH"
	DefaultCorpusSource = "birds.csv"
	corpusColumnEnvVar  = "CORPUS_COLUMN"
	wordListPathEnvVar  = "WORD_LIST_PATH"
	DefaultWordListPath = "bird_names.txt"

	// Middleware defaults
	clientIPHeadersEnvVar = "CLIENT_IP_HEADERS"
	corsOriginsEnvVar     = "CORS_ALLOWED_ORIGINS"
	corsMaxAgeEnvVar      = "CORS_MAX_AGE"
	rateLimitRPSEnvVar    = "RATE_LIMIT_RPS"
	DefaultRateLimitRPS   = 0
	rateLimitBurstEnvVar  = "RATE_LIMIT_BURST"
	DefaultRateLimitBurst = 20
	redisURLEnvVar        = "REDIS_URL"
)

// A Config gathers every setting a birdpass server reads from the environment.
type Config struct {
	Env       birdpass.Environment
	LogJSON   bool
	LogLevel  slog.Level
	SentryDSN string

	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Corpus corpus.PrepareConfig

	CORS           middleware.CORSConfig
	IPHeaders      []string
	RateLimitBurst int

	// RateLimitRPS disables rate limiting when not positive, the default.
	RateLimitRPS float64

	// RedisURL selects a Redis backed rate limiter when set.
	RedisURL string
}

// NewConfig reads a Config from the environment,
// falling back to defaults for anything unset or unparsable.
func NewConfig() Config {
	cors := middleware.DefaultCORSConfig()
	cors.Origins = birdpass.EnvVarOrStrings(corsOriginsEnvVar, cors.Origins)
	cors.MaxAge = birdpass.EnvVarOrDuration(corsMaxAgeEnvVar, cors.MaxAge)

	return Config{
		Env:       birdpass.EnvVarOrEnv(environmentEnvVar, birdpass.Development),
		LogJSON:   birdpass.EnvVarOrBool(logJSONEnvVar, defaultLogJSON),
		LogLevel:  birdpass.EnvVarOrLogLevel(logLevelEnvVar, defaultLogLvl),
		SentryDSN: birdpass.EnvVarOrString(sentryDsnEnvVar, ""),

		Host:         birdpass.EnvVarOrString(hostEnvVar, DefaultHost),
		Port:         birdpass.EnvVarOrString(portEnvVar, DefaultPort),
		IdleTimeout:  birdpass.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  birdpass.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: birdpass.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),

		Corpus: corpus.PrepareConfig{
			Column:       birdpass.EnvVarOrString(corpusColumnEnvVar, corpus.DefaultColumn),
			SourcePath:   birdpass.EnvVarOrString(corpusSourceEnvVar, DefaultCorpusSource),
			WordListPath: birdpass.EnvVarOrString(wordListPathEnvVar, DefaultWordListPath),
		},

		CORS:           cors,
		IPHeaders:      birdpass.EnvVarOrStrings(clientIPHeadersEnvVar, middleware.DefaultIPHeaders),
		RateLimitBurst: birdpass.EnvVarOrInt(rateLimitBurstEnvVar, DefaultRateLimitBurst),
		RateLimitRPS:   birdpass.EnvVarOrFloat(rateLimitRPSEnvVar, DefaultRateLimitRPS),
		RedisURL:       birdpass.EnvVarOrString(redisURLEnvVar, ""),
	}
}

// Addr joins Host and Port into the address the server listens on.
func (c Config) Addr() string {
	port := c.Port
	if port != "" && port[0] != ':' {
		port = ":" + port
	}

	return c.Host + port
}
