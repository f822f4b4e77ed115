package ranger_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/http/middleware"
	"github.com/xy-planning-network/birdpass/ranger"
)

func TestNewConfigDefaults(t *testing.T) {
	// Arrange
	for _, key := range []string{
		"ENVIRONMENT", "LOG_LEVEL", "LOG_JSON", "SENTRY_DSN", "HOST", "PORT",
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
		"CORPUS_SOURCE_PATH", "CORPUS_COLUMN", "WORD_LIST_PATH",
		"CLIENT_IP_HEADERS", "CORS_ALLOWED_ORIGINS", "CORS_MAX_AGE",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "REDIS_URL",
	} {
		t.Setenv(key, "")
	}

	// Act
	cfg := ranger.NewConfig()

	// Assert
	require.Equal(t, birdpass.Development, cfg.Env)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.False(t, cfg.LogJSON)
	require.Empty(t, cfg.SentryDSN)
	require.Equal(t, "localhost:8080", cfg.Addr())
	require.Equal(t, 5*time.Second, cfg.ReadTimeout)
	require.Equal(t, 5*time.Second, cfg.WriteTimeout)
	require.Equal(t, 120*time.Second, cfg.IdleTimeout)
	require.Equal(t, "birds.csv", cfg.Corpus.SourcePath)
	require.Equal(t, "English name", cfg.Corpus.Column)
	require.Equal(t, "bird_names.txt", cfg.Corpus.WordListPath)
	require.Equal(t, middleware.DefaultIPHeaders, cfg.IPHeaders)
	require.Equal(t, middleware.DefaultCORSConfig(), cfg.CORS)
	require.Zero(t, cfg.RateLimitRPS)
	require.Equal(t, 20, cfg.RateLimitBurst)
	require.Empty(t, cfg.RedisURL)
}

func TestNewConfigFromEnv(t *testing.T) {
	// Arrange
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("WORD_LIST_PATH", "/srv/words.txt")
	t.Setenv("CLIENT_IP_HEADERS", "X-Real-Ip, X-Forwarded-For")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("CORS_MAX_AGE", "1h")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	// Act
	cfg := ranger.NewConfig()

	// Assert
	require.Equal(t, birdpass.Production, cfg.Env)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, "127.0.0.1:9090", cfg.Addr())
	require.Equal(t, "/srv/words.txt", cfg.Corpus.WordListPath)
	require.Equal(t, []string{"X-Real-Ip", "X-Forwarded-For"}, cfg.IPHeaders)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.Origins)
	require.Equal(t, time.Hour, cfg.CORS.MaxAge)
	require.Equal(t, 2.5, cfg.RateLimitRPS)
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}
