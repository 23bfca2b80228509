package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomoviefavs/internal/constants"
)

type healthResponse struct {
	Status    string `json:"status"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	MoviesAPI string `json:"moviesApi"`
}

// handleHealth reports liveness only; it does not call the movies API.
func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Name:      constants.AppName,
		Version:   constants.AppVersion,
		MoviesAPI: h.config.APIURL,
	})
}
