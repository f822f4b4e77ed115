package middleware

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	_ VisitorStore = (*Visitors)(nil)
	_ VisitorStore = RedisVisitors{}
)

const redisVisitorPrefix = "birdpass:visitor:"

// A RedisVisitors counts requests per IP address in a Redis backend
// so replicas of a server share one budget.
//
// Each IP address gets a fixed window long enough to refill a full burst at rps,
// and may make up to burst requests within it.
type RedisVisitors struct {
	burst  int64
	client redis.Cmdable
	window time.Duration
}

// NewRedisVisitors constructs a RedisVisitors backed by client.
func NewRedisVisitors(client redis.Cmdable, rps float64, burst int) RedisVisitors {
	if burst < 1 {
		burst = 1
	}

	window := time.Second
	if rps > 0 {
		window = time.Duration(math.Ceil(float64(burst)/rps)) * time.Second
	}

	return RedisVisitors{burst: int64(burst), client: client, window: window}
}

// Allow implements VisitorStore.
func (rv RedisVisitors) Allow(ctx context.Context, ip string) (bool, error) {
	key := redisVisitorPrefix + ip

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := rv.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: counting visitor %s", err, ip)
	}

	// A negative TTL means the window has not been opened yet.
	if ttl.Val() < 0 {
		if err := rv.client.Expire(ctx, key, rv.window).Err(); err != nil {
			return false, fmt.Errorf("%w: opening window for visitor %s", err, ip)
		}
	}

	return incr.Val() <= rv.burst, nil
}
