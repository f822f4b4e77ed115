package birdpass

type Key string

const (
	// IpAddrKey stashes the client IP address attributed to an HTTP request.
	IpAddrKey Key = "IpAddrKey"

	// LoggerKey stashes the request-scoped logger.
	LoggerKey Key = "LoggerKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "birdpass context key: " + string(k)
}
