package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/mocks"
)

func TestOpenAPI(t *testing.T) {
	router := setupRouter(new(mocks.MockRecipeService), zap.NewNop())

	w := performRequest(router, http.MethodGet, "/openapi.json", "")

	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		Info struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Version     string `json:"version"`
		} `json:"info"`
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Personalized Recipe Generator API", doc.Info.Title)
	assert.Contains(t, doc.Info.Description, "Gemini")
	assert.Equal(t, Version, doc.Info.Version)
	assert.Contains(t, doc.Paths["/generate-recipe"], "post")
	assert.Contains(t, doc.Paths["/"], "get")
	assert.Contains(t, doc.Paths["/health"], "get")
}
