/*
Package handler answers the HTTP requests a birdpass server routes.

A [Handler] shares one [resp.Responder] and one [passphrase.Generator]
across every request; neither is written to after construction,
so a Handler serves any number of requests concurrently.
*/
package handler
