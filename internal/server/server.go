package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-name-keeper/internal/config"
	"github.com/MKhiriev/go-name-keeper/internal/handler"
	"github.com/MKhiriev/go-name-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	return newServer(handlers, cfg, logger)
}

func newServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (*server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

func (s *server) Run(ctx context.Context) error {
	transports := s.transports()

	// bind every address before serving anything
	for i, t := range transports {
		if err := t.Listen(); err != nil {
			s.shutdown(transports[:i])
			return err
		}
	}

	serveErrs := make(chan error, len(transports))
	for _, t := range transports {
		s.logger.Info().Msgf("Launching %s server", t.Name())
		go func() {
			serveErrs <- t.Serve()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErrs:
	}

	s.shutdown(transports)
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}

func (s *server) shutdown(transports []transport) {
	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	for _, t := range transports {
		if err := t.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		s.logger.Err(err).Msg("error during shutdown")
	}
}
