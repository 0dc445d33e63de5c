package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully.
	RunServer() error

	// Run serves until ctx is done or a listener fails.
	Run(ctx context.Context) error
}

// transport is one listening server (HTTP or gRPC).
type transport interface {
	Name() string
	Listen() error
	Serve() error
	Shutdown(ctx context.Context) error
}
