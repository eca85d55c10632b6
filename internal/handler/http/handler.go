package http

import (
	"github.com/MKhiriev/recipe-manager/internal/config"
	"github.com/MKhiriev/recipe-manager/internal/logger"
	"github.com/MKhiriev/recipe-manager/internal/service"
)

type Handler struct {
	services *service.Services
	server   config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		server:   cfg,
		logger:   logger,
	}
}
