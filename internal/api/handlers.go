package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/types"
)

// Version is reported by the health endpoint and the CLI
const Version = "1.0.0"

const welcomeMessage = "Welcome to the Personalized Recipe Generator API!"

// Root confirms the API is running
// @Summary Welcome message
// @Tags    meta
// @Produce json
// @Success 200 {object} types.MessageResponse
// @Router  / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, types.MessageResponse{Message: welcomeMessage})
}

// HealthCheck returns the health status of the API. It never touches the provider.
// @Summary Liveness probe
// @Tags    meta
// @Produce json
// @Success 200 {object} types.HealthResponse
// @Router  /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:  "healthy",
		Version: Version,
	})
}
