package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/http/middleware"
)

// A Route maps a path and HTTP methods to an [http.Handler].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Methods     []string
	Handler     http.Handler
	Middlewares []middleware.Adapter
}

// Router routes requests for passphrases and service health.
type Router struct {
	Env           birdpass.Environment
	everyReqStack []middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
func New(env birdpass.Environment) *Router {
	return &Router{Env: env, r: mux.NewRouter()}
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.Handler] as the default handler
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.Handler) {
	r.r.NotFoundHandler = middleware.Chain(middleware.ReportPanic(r.Env)(handler), r.everyReqStack...)
}

// HandleMethodNotAllowed sets the provided [http.Handler] as the handler
// for when a request matches a Route's path but none of its methods.
func (r *Router) HandleMethodNotAllowed(handler http.Handler) {
	r.r.MethodNotAllowedHandler = middleware.Chain(middleware.ReportPanic(r.Env)(handler), r.everyReqStack...)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares))
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		handler := middleware.Chain(middleware.ReportPanic(r.Env)(route.Handler), mws...)
		r.r.Handle(route.Path, handler).Methods(route.Methods...)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
//
// Call OnEveryRequest before registering routes.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api") handles requests to endpoints like /api/generate
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		everyReqStack: r.everyReqStack,
	}
}
