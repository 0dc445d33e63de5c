package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-name-keeper/internal/logger"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, address string, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func (h *httpServer) Name() string {
	return "HTTP"
}

func (h *httpServer) Listen() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening HTTP address %s: %w", h.server.Addr, err)
	}
	h.listener = listener
	h.logger.Info().Str("address", listener.Addr().String()).Msg("HTTP server listening")
	return nil
}

func (h *httpServer) Serve() error {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	err := h.server.Shutdown(ctx)
	if h.listener != nil {
		// never served listeners are not tracked by http.Server
		_ = h.listener.Close()
	}
	return err
}

func (h *httpServer) Addr() string {
	if h.listener == nil {
		return h.server.Addr
	}
	return h.listener.Addr().String()
}
