package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/types"
)

var (
	// ErrEmptyIngredients is returned before any provider call when no ingredients were given
	ErrEmptyIngredients = errors.New("ingredients cannot be empty")
	// ErrEmptyResponse is returned when the model answered without any content parts
	ErrEmptyResponse = errors.New("model returned an empty response")
	// ErrGenerationFailed wraps every error raised by the provider call
	ErrGenerationFailed = errors.New("recipe generation failed")
)

// RecipeService turns recipe requests into generated markdown recipes
type RecipeService struct {
	generator TextGenerator
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(generator TextGenerator) *RecipeService {
	return &RecipeService{
		generator: generator,
	}
}

// GenerateRecipe validates req, builds the prompt and makes exactly one provider call.
// The returned text is the model output untouched.
func (s *RecipeService) GenerateRecipe(ctx context.Context, req types.RecipeRequest) (string, error) {
	if strings.TrimSpace(req.Ingredients) == "" {
		return "", ErrEmptyIngredients
	}

	prompt := BuildRecipePrompt(req)

	gen, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if gen == nil || len(gen.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	return gen.Text, nil
}
