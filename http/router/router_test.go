package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/http/middleware"
	"github.com/xy-planning-network/birdpass/http/router"
)

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
}

func header(key, val string) middleware.Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(key, val)
			h.ServeHTTP(w, r)
		})
	}
}

func TestRouterHandleRoutes(t *testing.T) {
	// Arrange
	rt := router.New(birdpass.Testing)
	rt.OnEveryRequest(header("X-Order", "every"))
	rt.HandleRoutes(
		[]router.Route{
			{Path: "/generate", Methods: []string{http.MethodGet, http.MethodPost}, Handler: okHandler("gen")},
			{
				Path:        "/healthz",
				Methods:     []string{http.MethodGet},
				Handler:     okHandler("ok"),
				Middlewares: []middleware.Adapter{header("X-Order", "route")},
			},
		},
		header("X-Order", "group"),
	)

	tcs := []struct {
		name   string
		method string
		path   string
		code   int
		body   string
		order  []string
	}{
		{"Generate-GET", http.MethodGet, "/generate", http.StatusOK, "gen", []string{"every", "group"}},
		{"Generate-POST", http.MethodPost, "/generate", http.StatusOK, "gen", []string{"every", "group"}},
		{"Health", http.MethodGet, "/healthz", http.StatusOK, "ok", []string{"every", "group", "route"}},
		{"Wrong-Method", http.MethodDelete, "/generate", http.StatusMethodNotAllowed, "", nil},
		{"Not-Found", http.MethodGet, "/nope", http.StatusNotFound, "404 page not found\n", nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()

			// Act
			rt.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.body, w.Body.String())
			require.Equal(t, tc.order, w.Header().Values("X-Order"))
		})
	}
}

func TestRouterHandleNotFound(t *testing.T) {
	// Arrange
	rt := router.New(birdpass.Testing)
	rt.OnEveryRequest(header("X-Order", "every"))
	rt.HandleNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such bird", http.StatusNotFound)
	}))
	w := httptest.NewRecorder()

	// Act
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "no such bird\n", w.Body.String())
	require.Equal(t, []string{"every"}, w.Header().Values("X-Order"))
}

func TestRouterSubrouter(t *testing.T) {
	// Arrange
	rt := router.New(birdpass.Testing)
	rt.OnEveryRequest(header("X-Order", "every"))
	rt.Subrouter("/api").Handle(router.Route{
		Path:    "/generate",
		Methods: []string{http.MethodPost},
		Handler: okHandler("api"),
	})
	w := httptest.NewRecorder()

	// Act
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/generate", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "api", w.Body.String())
	require.Equal(t, []string{"every"}, w.Header().Values("X-Order"))
}
