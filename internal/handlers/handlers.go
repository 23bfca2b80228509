// Package handlers implements the HTTP handlers of the movies web frontend.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomoviefavs/internal/config"
	"github.com/amaumene/gomoviefavs/internal/constants"
	"github.com/amaumene/gomoviefavs/internal/frontend"
	"github.com/amaumene/gomoviefavs/internal/services"
)

// Handler handles HTTP requests for the movies frontend.
type Handler struct {
	services *services.Container
	config   *config.Config
	frontend *frontend.Frontend
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
		frontend: frontend.New(services.Movies, services.Logger),
	}
}

// RegisterRoutes registers all HTTP routes of the frontend.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleHome)

	// Card buttons submit their payload here
	r.POST(constants.AddFormAction, h.handleAddFavourite)
	r.POST(constants.RemoveFormAction, h.handleRemoveFavourite)

	r.GET("/healthz", h.handleHealth)
}
