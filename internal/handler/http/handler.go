package http

import (
	"github.com/avetrin/go-folio/internal/config"
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/service"
	"github.com/avetrin/go-folio/models"
)

type Handler struct {
	services *service.Services
	server   config.Server

	skills      *resourceHandler[*models.Skill]
	experiences *resourceHandler[*models.Experience]
	projects    *resourceHandler[*models.Project]

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		server:   server,

		skills:      newResourceHandler(services.Skills, func() *models.Skill { return &models.Skill{} }),
		experiences: newResourceHandler(services.Experiences, func() *models.Experience { return &models.Experience{} }),
		projects:    newResourceHandler(services.Projects, func() *models.Project { return &models.Project{} }),

		logger: logger,
	}
}
