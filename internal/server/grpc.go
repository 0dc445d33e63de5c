package server

import (
	"context"
	"fmt"
	"net"

	myGRPC "github.com/MKhiriev/go-name-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-name-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: address,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) Name() string {
	return "gRPC"
}

func (g *grpcServer) Listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening gRPC address %s: %w", g.address, err)
	}
	g.gRPCNetListener = listener
	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	return nil
}

func (g *grpcServer) Serve() error {
	g.handler.SetServing()
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown reports NOT_SERVING first, then drains. GracefulStop is cut short
// with Stop when ctx expires.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.SetNotServing()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	defer func() {
		if g.gRPCNetListener != nil {
			_ = g.gRPCNetListener.Close()
		}
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}

func (g *grpcServer) Addr() string {
	if g.gRPCNetListener == nil {
		return g.address
	}
	return g.gRPCNetListener.Addr().String()
}
