/*
Package router defines how birdpass routes HTTP requests.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as a thin wrapper around that package.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and the HTTP methods it answers comprise a [Route].
An implementation of [http.Handler] is called when a request matches a Route.
Before a request gets to a handler, though,
the middlewares registered with [Router.OnEveryRequest] are called in the order they were added,
followed by any middlewares added to the Route.
*/
package router
