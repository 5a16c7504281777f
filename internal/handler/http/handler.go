package http

import (
	"time"

	"github.com/MKhiriev/go-starwars-favorites/internal/config"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/service"
	"github.com/MKhiriev/go-starwars-favorites/internal/utils"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	allowedOrigins []string
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		allowedOrigins: cfg.CORSAllowedOrigins,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
