package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/middleware"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/service"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/types"
)

const (
	detailEmptyIngredients = "Ingredients cannot be empty."
	detailEmptyResponse    = "Failed to generate recipe. The model returned an empty response."
	detailInternalError    = "Failed to generate recipe due to an internal error."
	detailInvalidBody      = "Invalid request body."
)

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	recipeService service.IRecipeService
	logger        *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipeService service.IRecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		logger:        logger,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/generate-recipe", h.GenerateRecipe)
}

// GenerateRecipe generates a markdown recipe from the user's ingredients and preferences
// @Summary Generate a markdown recipe
// @Tags    recipes
// @Accept  json
// @Produce json
// @Param   input body types.RecipeRequest true "Ingredients and preferences"
// @Success 200 {object} types.RecipeResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 422 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router  /generate-recipe [post]
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	req := types.NewRecipeRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Detail: detailInvalidBody})
		return
	}

	recipe, err := h.recipeService.GenerateRecipe(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, types.RecipeResponse{Recipe: recipe})
	case errors.Is(err, service.ErrEmptyIngredients):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: detailEmptyIngredients})
	case errors.Is(err, service.ErrEmptyResponse):
		h.logger.Warn("model returned an empty response", zap.String("request_id", middleware.GetRequestID(c)))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Detail: detailEmptyResponse})
	default:
		h.logger.Error("an error occurred", zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Detail: detailInternalError})
	}
}
