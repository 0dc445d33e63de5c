// Package grpc exposes the standard gRPC health service of the names server
// so that orchestrators can probe readiness without going through HTTP.
package grpc

import (
	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-checked service name. The empty name reports
// the overall server status.
const ServiceName = "names.v1.Names"

// Handler owns the health status reported over gRPC.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose services start as NOT_SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetNotServing()
	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing marks the server ready.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// SetNotServing marks the server as not ready, e.g. while shutting down.
func (h *Handler) SetNotServing() {
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Debug().Str("status", status.String()).Msg("health status changed")
}
