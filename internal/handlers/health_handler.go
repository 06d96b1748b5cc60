package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports that the server is up.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
