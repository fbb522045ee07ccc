package mocks

import (
	"context"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/service"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// GenerateRecipe mocks the GenerateRecipe method
func (m *MockRecipeService) GenerateRecipe(ctx context.Context, req types.RecipeRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// MockTextGenerator is a mock implementation of the text generator
type MockTextGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (*service.Generation, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Generation), args.Error(1)
}
