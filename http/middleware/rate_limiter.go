package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/xy-planning-network/birdpass/logger"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTimeout = 60 * time.Minute
	visitorCleanupFreq = time.Minute
)

//go:generate mockgen -destination=mocks/mock_visitor_store.go -package=mocks . VisitorStore

// A VisitorStore decides whether the client at ip may make another request.
type VisitorStore interface {
	Allow(ctx context.Context, ip string) (bool, error)
}

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	burst       int
	lastCleanup time.Time
	rps         rate.Limit
	val         map[string]Visitor
	sync.Mutex
}

// NewVisitors constructs a Visitors whose visitors are limited to rps requests every second
// with bursts of up to burst.
func NewVisitors(rps float64, burst int) *Visitors {
	return &Visitors{
		burst:       burst,
		lastCleanup: time.Now().UTC(),
		rps:         rate.Limit(rps),
		val:         make(map[string]Visitor),
	}
}

// Allow implements VisitorStore.
func (vs *Visitors) Allow(_ context.Context, ip string) (bool, error) {
	ok := vs.Fetch(ip).Limiter.Allow()
	vs.cleanup()
	return ok, nil
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.rps, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// Len returns the number of visitors tracked.
func (vs *Visitors) Len() int {
	vs.Lock()
	defer vs.Unlock()
	return len(vs.val)
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
// A sweep runs at most once a minute.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()

	now := time.Now().UTC()
	if now.Sub(vs.lastCleanup) < visitorCleanupFreq {
		return
	}

	vs.lastCleanup = now
	for ip, v := range vs.val {
		if now.Sub(v.LastSeen) > visitorIdleTimeout {
			delete(vs.val, ip)
		}
	}
}

// RateLimit asks store whether the client IP address of a request may proceed,
// responding with a 429 when it may not.
//
// A store failing to answer lets the request through.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
//
// If store is nil, NoopAdapter returns and this middleware does nothing.
func RateLimit(store VisitorStore) Adapter {
	if store == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := store.Allow(r.Context(), GetIPAddress(r))
			if err != nil {
				logger.FromContext(r.Context()).Warn("rate limit store unavailable", "error", err)
				ok = true
			}

			if !ok {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
