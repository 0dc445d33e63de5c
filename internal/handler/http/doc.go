// Package http implements the REST transport of the names server.
//
// It exposes the /crud routes and /api/version, plus the middleware chain
// (panic recovery, trace ids, access logging, gzip, request timeouts) that
// wraps them before requests are delegated to the service layer.
package http
