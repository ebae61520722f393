package container

import (
	"log/slog"

	"github.com/joshua-takyi/campus/internal/config"
	"github.com/joshua-takyi/campus/internal/models"
	"github.com/joshua-takyi/campus/internal/services"
)

// Store is what a persistence backend has to provide.
type Store interface {
	models.EventRepo
	models.UserRepo
}

// Container holds all application dependencies
type Container struct {
	Logger       *slog.Logger
	Config       *config.Config
	EventService *services.EventService
	AuthService  *services.AuthService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, store Store) *Container {
	return &Container{
		Logger:       logger,
		Config:       cfg,
		EventService: services.NewEventService(store),
		AuthService:  services.NewAuthService(store),
	}
}
