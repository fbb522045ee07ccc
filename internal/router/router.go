package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/api"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/middleware"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/service"
)

// SetupRouter configures the application middleware and routes
func SetupRouter(recipeService service.IRecipeService, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.Recovery(logger),
		middleware.CORS(),
	)

	api.RegisterRoutes(router, recipeService, logger)

	return router
}
