package middleware

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/logger"
)

const passwordParam = "password"

// LogRequest opens a span around each request.
//
// The span is a child of sl carrying the request's method, path,
// client IP address and request ID.
// It is stashed in the request context for handlers to retrieve with [logger.FromContext].
// Once the handler returns, the span logs a [LogRequestRecord]:
// at info level when the response is a 200 and at warn level otherwise.
//
// A panicking handler is recovered: the span logs it at error level
// and the client receives a 500 if nothing was written yet.
//
// LogRequest scrubs the values for the following query keys:
//   - password
//
// If sl is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(sl *slog.Logger) Adapter {
	if sl == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t := time.Now()
			span := sl.With(
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("ip", GetIPAddress(r)),
				slog.String("request_id", requestID(r.Context())),
			)

			r = r.WithContext(logger.NewContext(r.Context(), span))

			rec := &statusRecorder{status: http.StatusOK}
			ww := httpsnoop.Wrap(w, httpsnoop.Hooks{
				WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
					return func(code int) {
						rec.header(code)
						next(code)
					}
				},
				Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
					return func(b []byte) (int, error) {
						rec.header(http.StatusOK)
						n, err := next(b)
						rec.size += int64(n)
						return n, err
					}
				},
				ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
					return func(src io.Reader) (int64, error) {
						rec.header(http.StatusOK)
						n, err := next(src)
						rec.size += n
						return n, err
					}
				},
			})

			defer func() {
				if p := recover(); p != nil {
					if p == http.ErrAbortHandler {
						panic(p)
					}

					if !rec.wroteHeader {
						http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					}

					span.LogAttrs(r.Context(), slog.LevelError, "failed",
						slog.String("error", fmt.Sprint(p)),
						slog.Any("request", newLogRequestRecord(r, rec, t)),
					)
					return
				}

				record := newLogRequestRecord(r, rec, t)
				if rec.status == http.StatusOK {
					span.LogAttrs(r.Context(), slog.LevelInfo, "completed", slog.Any("request", record))
					return
				}

				span.LogAttrs(r.Context(), slog.LevelWarn, "completed with status", slog.Any("request", record))
			}()

			h.ServeHTTP(ww, r)
		})
	}
}

// statusRecorder tracks what a handler wrote.
type statusRecorder struct {
	size        int64
	status      int
	wroteHeader bool
}

func (rec *statusRecorder) header(code int) {
	if rec.wroteHeader {
		return
	}

	rec.status = code
	rec.wroteHeader = true
}

// A LogRequestRecord describes a completed HTTP request.
type LogRequestRecord struct {
	BodySize       int64  `json:"bodySize"`
	DurationMS     int64  `json:"durationMs"`
	Host           string `json:"host"`
	ID             string `json:"id"`
	IPAddr         string `json:"ipAddr"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol"`
	Referrer       string `json:"referrer"`
	ReqContentType string `json:"reqContentType"`
	Scheme         string `json:"scheme"`
	Status         int    `json:"status"`
	URI            string `json:"uri"`
	UserAgent      string `json:"userAgent"`
}

// LogValue implements [log/slog.LogValuer].
func (rec LogRequestRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("bodySize", rec.BodySize),
		slog.Int64("durationMs", rec.DurationMS),
		slog.String("host", rec.Host),
		slog.String("id", rec.ID),
		slog.String("ipAddr", rec.IPAddr),
		slog.String("method", rec.Method),
		slog.String("path", rec.Path),
		slog.String("protocol", rec.Protocol),
		slog.String("referrer", rec.Referrer),
		slog.String("reqContentType", rec.ReqContentType),
		slog.String("scheme", rec.Scheme),
		slog.Int("status", rec.Status),
		slog.String("uri", rec.URI),
		slog.String("userAgent", rec.UserAgent),
	)
}

func newLogRequestRecord(r *http.Request, rec *statusRecorder, start time.Time) LogRequestRecord {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return LogRequestRecord{
		BodySize:       rec.size,
		DurationMS:     time.Since(start).Milliseconds(),
		Host:           r.Host,
		ID:             requestID(r.Context()),
		IPAddr:         GetIPAddress(r),
		Method:         r.Method,
		Path:           r.URL.Path,
		Protocol:       r.Proto,
		Referrer:       r.Referer(),
		ReqContentType: r.Header.Get("Content-Type"),
		Scheme:         scheme,
		Status:         rec.status,
		URI:            maskedURI(r),
		UserAgent:      r.UserAgent(),
	}
}

func maskedURI(r *http.Request) string {
	uri := r.URL.Path
	q := r.URL.Query()
	birdpass.Mask(q, passwordParam)
	if query := q.Encode(); query != "" {
		uri += "?" + query
	}

	return uri
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(birdpass.RequestIDKey).(string)
	return id
}
