package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/xy-planning-network/birdpass"
)

const unknownIPAddress = "unknown"

// DefaultIPHeaders is the order of headers trusted to carry the client IP address
// when a server runs behind Cloudflare.
var DefaultIPHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For"}

// An IPResolver attributes a request to a client IP address.
type IPResolver struct {
	// Headers are checked in order; the first one set wins.
	Headers []string
}

// NewIPResolver constructs an IPResolver trusting headers in the order given,
// or DefaultIPHeaders when none are.
func NewIPResolver(headers ...string) IPResolver {
	if len(headers) == 0 {
		headers = DefaultIPHeaders
	}

	return IPResolver{Headers: headers}
}

// Resolve returns the first entry, trimmed, of the first configured header carrying one.
// If no header does, the host of the request's peer address returns.
func (res IPResolver) Resolve(r *http.Request) string {
	for _, h := range res.Headers {
		first, _, _ := strings.Cut(r.Header.Get(h), ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	return peerAddress(r.RemoteAddr)
}

// InjectIPAddress resolves the client IP address with res
// and promotes it to *http.Request.Context under birdpass.IpAddrKey.
func InjectIPAddress(res IPResolver) Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := res.Resolve(r)
			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), birdpass.IpAddrKey, ip)))
		})
	}
}

// GetIPAddress retrieves the client IP address InjectIPAddress stashed
// or, without one, resolves it with the default headers.
func GetIPAddress(r *http.Request) string {
	if ip, ok := r.Context().Value(birdpass.IpAddrKey).(string); ok && ip != "" {
		return ip
	}

	return NewIPResolver().Resolve(r)
}

// peerAddress strips the port from addr.
func peerAddress(addr string) string {
	if addr == "" {
		return unknownIPAddress
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}
