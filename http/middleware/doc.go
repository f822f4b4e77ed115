/*
The middleware package defines what a middleware is in birdpass and the set of middlewares a birdpass server runs.

The available middlewares are:
  - CORS
  - InjectIPAddress
  - LogRequest
  - RateLimit
  - ReportPanic
  - RequestID

The ranger package assembles them in this order:

	res := middleware.NewIPResolver(headers...)
	adpts := []middleware.Adapter{
		middleware.RequestID(),
		middleware.InjectIPAddress(res),
		middleware.LogRequest(httpLogger),
		middleware.CORS(middleware.DefaultCORSConfig()),
		middleware.RateLimit(middleware.NewVisitors(5, 20)),
	}

# Client IP attribution

Which header carries the client's address depends on the proxy in front of the server.
An [IPResolver] checks the headers it was configured with in order,
taking the first entry of a comma-separated list,
before falling back to the peer address of the connection.
The address it settles on is what request logs and rate limiting attribute a request to.
*/
package middleware
