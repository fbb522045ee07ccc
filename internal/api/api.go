package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/service"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, recipeService service.IRecipeService, logger *zap.Logger) {
	router.GET("/", Root)
	router.GET("/health", HealthCheck)
	router.GET("/openapi.json", OpenAPI)

	recipeHandler := NewRecipeHandler(recipeService, logger)
	recipeHandler.RegisterRoutes(router)
}
