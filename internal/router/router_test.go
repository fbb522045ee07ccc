package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/middleware"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupRouter(t *testing.T) {
	recipeService := new(mocks.MockRecipeService)
	recipeService.On("GenerateRecipe", mock.Anything, mock.Anything).Return("# Soup", nil)
	router := SetupRouter(recipeService, zap.NewNop())

	t.Run("should serve the welcome message", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("should allow cross-origin recipe requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/generate-recipe", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should generate a recipe", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/generate-recipe", strings.NewReader(`{"ingredients":"leeks"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"recipe":"# Soup"}`, w.Body.String())
	})
}
