package service

import (
	"context"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/types"
)

// TextGenerator sends a single prompt to a hosted text-generation model.
// Implementations must be safe for concurrent use.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (*Generation, error)
}

// IRecipeService defines the interface for recipe generation
type IRecipeService interface {
	GenerateRecipe(ctx context.Context, req types.RecipeRequest) (string, error)
}
