package http

import (
	"time"

	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"github.com/MKhiriev/go-name-keeper/internal/service"
	"github.com/go-playground/validator/v10"
)

// maxBodyBytes bounds write request bodies. A valid body is a few dozen bytes.
const maxBodyBytes = 4 << 10

type Handler struct {
	services *service.Services
	validate *validator.Validate

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
