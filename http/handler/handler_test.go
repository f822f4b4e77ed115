package handler_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/corpus"
	"github.com/xy-planning-network/birdpass/http/handler"
	"github.com/xy-planning-network/birdpass/http/resp"
	"github.com/xy-planning-network/birdpass/http/router"
	"github.com/xy-planning-network/birdpass/logger"
	"github.com/xy-planning-network/birdpass/passphrase"
)

var shape = regexp.MustCompile(`^\w+\d-\w+\d-\w+\d-\w+\d$`)

func newHandler(t *testing.T, words ...string) (*handler.Handler, *bytes.Buffer) {
	t.Helper()

	b := new(bytes.Buffer)
	l := logger.New(slog.New(slog.NewJSONHandler(b, nil)))
	gen := passphrase.NewGenerator(corpus.New(words))

	return handler.New(gen, resp.NewResponder(resp.WithLogger(l))), b
}

func serve(h *handler.Handler, method, path string) *httptest.ResponseRecorder {
	rt := router.New(birdpass.Testing)
	rt.HandleRoutes(h.Routes())

	w := httptest.NewRecorder()
	rt.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestGenerate(t *testing.T) {
	tcs := []struct {
		name   string
		method string
		path   string
	}{
		{"GET", http.MethodGet, handler.GeneratePath},
		{"POST", http.MethodPost, handler.GeneratePath},
		{"API", http.MethodPost, handler.APIGeneratePath},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			h, _ := newHandler(t, "Wren", "Robin", "Heron", "Crane", "Swan")

			// Act
			w := serve(h, tc.method, tc.path)

			// Assert
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			require.Regexp(t, shape, w.Body.String())
		})
	}
}

func TestGenerateInsufficientCorpus(t *testing.T) {
	// Arrange
	h, b := newHandler(t, "Wren", "Robin", "Heron")

	// Act
	w := serve(h, http.MethodGet, handler.GeneratePath)

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), passphrase.ErrInsufficientCorpus.Error())
	require.NotRegexp(t, shape, w.Body.String())
	require.Contains(t, b.String(), `"level":"ERROR"`)
}

func TestGeneratePreflight(t *testing.T) {
	// Arrange
	h, _ := newHandler(t, "Wren", "Robin", "Heron", "Crane")

	// Act
	w := serve(h, http.MethodOptions, handler.GeneratePath)

	// Assert
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Zero(t, w.Body.Len())
}

func TestGenerateMethodNotAllowed(t *testing.T) {
	// Arrange
	h, _ := newHandler(t, "Wren", "Robin", "Heron", "Crane")

	// Act
	w := serve(h, http.MethodGet, handler.APIGeneratePath)

	// Assert
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestGenerateConcurrent(t *testing.T) {
	// Arrange
	words := []string{"Wren", "Robin", "Heron", "Crane", "Swan", "Kestrel", "Kiwi", "SnowGoose"}
	h, _ := newHandler(t, words...)
	rt := router.New(birdpass.Testing)
	rt.HandleRoutes(h.Routes())

	var g errgroup.Group
	for i := 0; i < 200; i++ {
		g.Go(func() error {
			// Act
			w := httptest.NewRecorder()
			rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, handler.GeneratePath, nil))

			// Assert
			if w.Code != http.StatusOK || !shape.MatchString(w.Body.String()) {
				return &malformed{w.Code, w.Body.String()}
			}

			seen := make(map[string]bool)
			for _, part := range strings.Split(w.Body.String(), "-") {
				word := part[:len(part)-1]
				if seen[word] {
					return &malformed{w.Code, w.Body.String()}
				}
				seen[word] = true
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
}

type malformed struct {
	code int
	body string
}

func (m *malformed) Error() string { return http.StatusText(m.code) + ": " + m.body }

func TestHealth(t *testing.T) {
	tcs := []struct {
		name     string
		words    []string
		code     int
		expected string
	}{
		{"Ok", []string{"Wren", "Robin", "Heron", "Crane"}, http.StatusOK, `{"status":"ok","words":4}` + "\n"},
		{"Unavailable", []string{"Wren"}, http.StatusServiceUnavailable, `{"status":"unavailable","words":1}` + "\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			h, _ := newHandler(t, tc.words...)

			// Act
			w := serve(h, http.MethodGet, handler.HealthPath)

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.expected, w.Body.String())
		})
	}
}

// brokenWriter records headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
	headers int
	writes  int
}

func (bw *brokenWriter) WriteHeader(code int) {
	bw.headers++
	bw.ResponseRecorder.WriteHeader(code)
}

func (bw *brokenWriter) Write([]byte) (int, error) {
	bw.writes++
	return 0, errors.New("write: broken pipe")
}

func TestWriteFailure(t *testing.T) {
	tcs := []struct {
		name   string
		path   string
		handle func(*handler.Handler) http.HandlerFunc
	}{
		{"Generate", handler.GeneratePath, func(h *handler.Handler) http.HandlerFunc { return h.Generate }},
		{"Health", handler.HealthPath, func(h *handler.Handler) http.HandlerFunc { return h.Health }},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			h, respLog := newHandler(t, "Wren", "Robin", "Heron", "Crane")
			spanLog := new(bytes.Buffer)
			r := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r = r.WithContext(logger.NewContext(r.Context(), slog.New(slog.NewJSONHandler(spanLog, nil))))
			w := &brokenWriter{ResponseRecorder: httptest.NewRecorder()}

			// Act
			tc.handle(h)(w, r)

			// Assert
			require.Equal(t, 1, w.headers)
			require.Equal(t, 1, w.writes)
			require.Equal(t, http.StatusOK, w.Code)
			require.Contains(t, spanLog.String(), `"msg":"could not write response"`)
			require.Contains(t, spanLog.String(), "broken pipe")
			require.Empty(t, respLog.String())
		})
	}
}
