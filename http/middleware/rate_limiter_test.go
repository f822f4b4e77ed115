package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/birdpass/http/middleware"
	"github.com/xy-planning-network/birdpass/http/middleware/mocks"
)

func TestVisitorFetch(t *testing.T) {
	t.Run("Serial", func(t *testing.T) {
		// Arrange
		vs := middleware.NewVisitors(5, 20)

		// Act
		v1 := vs.Fetch("127.0.0.1")
		time.Sleep(1 * time.Millisecond)
		v2 := vs.Fetch("127.0.0.1")

		// Assert
		require.Equal(t, v1.Limiter, v2.Limiter)
		require.True(t, v1.LastSeen.Before(v2.LastSeen))
		require.Equal(t, 20, v1.Limiter.Burst())
		require.Equal(t, 1, vs.Len())
	})

	t.Run("Concurrent", func(t *testing.T) {
		// Arrange
		var wg sync.WaitGroup
		vs := middleware.NewVisitors(5, 20)
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Act
				vs.Fetch("127.0.0.1")
			}()
		}

		wg.Wait()

		// Assert
		require.Equal(t, 1, vs.Len())
	})
}

func TestVisitorsAllow(t *testing.T) {
	// Arrange
	vs := middleware.NewVisitors(1, 2)
	ctx := context.Background()

	// Act
	first, _ := vs.Allow(ctx, "203.0.113.5")
	second, _ := vs.Allow(ctx, "203.0.113.5")
	third, err := vs.Allow(ctx, "203.0.113.5")
	other, _ := vs.Allow(ctx, "198.51.100.7")

	// Assert
	require.NoError(t, err)
	require.True(t, first)
	require.True(t, second)
	require.False(t, third)
	require.True(t, other)
}

func TestRateLimit(t *testing.T) {
	// Arrange + Act
	actual := middleware.RateLimit(nil)

	// Assert
	require.NotNil(t, actual)

	tcs := []struct {
		name     string
		allow    bool
		err      error
		expected int
	}{
		{"Allowed", true, nil, http.StatusOK},
		{"Denied", false, nil, http.StatusTooManyRequests},
		{"Store-Down", false, errors.New("connection refused"), http.StatusOK},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockVisitorStore(ctrl)
			store.EXPECT().Allow(gomock.Any(), "203.0.113.5").Return(tc.allow, tc.err)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/generate", nil)
			r.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")

			// Act
			middleware.RateLimit(store)(NoopHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expected, w.Code)
		})
	}
}

func TestRedisVisitors(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	// Arrange
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	ip := "203.0.113." + time.Now().Format("150405.000000")
	defer client.Del(ctx, "birdpass:visitor:"+ip)

	rv := middleware.NewRedisVisitors(client, 1, 2)

	// Act
	first, err1 := rv.Allow(ctx, ip)
	second, err2 := rv.Allow(ctx, ip)
	third, err3 := rv.Allow(ctx, ip)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.NoError(t, err3)
	require.True(t, first)
	require.True(t, second)
	require.False(t, third)

	ttl, err := client.TTL(ctx, "birdpass:visitor:"+ip).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))
}

func TestRedisVisitorsUnavailable(t *testing.T) {
	// Arrange
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer client.Close()

	rv := middleware.NewRedisVisitors(client, 5, 20)

	// Act
	ok, err := rv.Allow(context.Background(), "203.0.113.5")

	// Assert
	require.Error(t, err)
	require.False(t, ok)
}
