/*
Package ranger initializes and manages a birdpass server with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].
Before returning, [New] makes sure a word list exists, extracting it from the bird dataset if need be,
and loads it into memory.

[*Ranger.Guide] begins the web server.
By default, [*Ranger.Guide] listens on [DefaultHost][DefaultPort] (localhost:8080),
assuming a reverse proxy such as Cloudflare forwards requests to it.

Stop that web server with [*Ranger.Shutdown],
cancel the context passed to [WithContext],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a birdpass server through environment variables.
Environment variables may be set in a file called ".env"
found at the same directory the server is executed from.

Here are the available environment variables.
  - CLIENT_IP_HEADERS: comma-separated headers trusted, in order, to carry the client IP address; default: CF-Connecting-IP,X-Forwarded-For
  - CORPUS_COLUMN: the header of the CSV column holding bird names; default: English name
  - CORPUS_SOURCE_PATH: the CSV dataset the word list is extracted from; default: birds.csv
  - CORS_ALLOWED_ORIGINS: comma-separated origins allowed to read passphrases; default: *
  - CORS_MAX_AGE: how long - as understood by [time.ParseDuration] - browsers may cache preflight responses; default: 24h
  - ENVIRONMENT: the environment the server is running in; cf. [birdpass.Environment]
  - HOST: the host the server is running on; default: localhost
  - LOG_JSON: log JSON even in DEVELOPMENT; default: false
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [log/slog.Level]
  - PORT: the port the server should listen on; default: :8080
  - RATE_LIMIT_BURST: requests a client IP address may burst; default: 20
  - RATE_LIMIT_RPS: requests per second a client IP address may sustain, rate limiting stays off unless positive; default: 0
  - REDIS_URL: a Redis server to share rate limits across replicas through; default: in-memory rate limits
  - SENTRY_DSN: report errors and panics to Sentry
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - WORD_LIST_PATH: the word list, one bird name per line; default: bird_names.txt
*/
package ranger
