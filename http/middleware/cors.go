package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
)

const (
	corsMaxAgeHeader        = "Access-Control-Max-Age"
	corsRequestMethodHeader = "Access-Control-Request-Method"
)

// A CORSConfig sets the cross-origin policy of responses.
type CORSConfig struct {
	// Origins allowed to read responses; "*" allows any.
	Origins []string

	// Methods allowed for cross-origin requests.
	Methods []string

	// MaxAge is how long a browser may cache a preflight response.
	MaxAge time.Duration
}

// DefaultCORSConfig allows GET requests from any origin
// and lets browsers cache preflight responses for a day.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		Origins: []string{"*"},
		Methods: []string{http.MethodGet},
		MaxAge:  24 * time.Hour,
	}
}

// CORS sets "Access-Control-Allow" style headers on a response
// and answers preflight requests.
// The route including this middleware must also handle the http.MethodOptions method.
//
// If cfg allows no origins, NoopAdapter returns and this middleware does nothing.
func CORS(cfg CORSConfig) Adapter {
	if len(cfg.Origins) == 0 {
		return NoopAdapter
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.Origins),
		handlers.AllowedMethods(cfg.Methods),
	)

	// NOTE: handlers.MaxAge caps the max age at 10 minutes.
	maxAge := strconv.Itoa(int(cfg.MaxAge / time.Second))

	return func(h http.Handler) http.Handler {
		next := cors(h)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.MaxAge > 0 && r.Method == http.MethodOptions && r.Header.Get(corsRequestMethodHeader) != "" {
				w.Header().Set(corsMaxAgeHeader, maxAge)
			}

			next.ServeHTTP(w, r)
		})
	}
}
