package service

import (
	"fmt"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/types"
)

const recipePromptTemplate = `
You are a creative chef. Generate a delicious recipe based on the following details:

1.  **Main Ingredients:** %s
2.  **Dietary Restrictions:** %s
3.  **Desired Cuisine:** %s

Please provide a response with the following structure:
- **Recipe Title:** A catchy name for the dish.
- **Description:** A short, enticing description.
- **Ingredients:** A bulleted list of all ingredients with quantities.
- **Instructions:** Step-by-step cooking instructions.
- **Serving Suggestion:** (Optional) A suggestion on how to best serve the dish.

Make the recipe easy to follow for a home cook. Ensure the output is well-formatted in markdown.
`

// BuildRecipePrompt interpolates the request fields verbatim into the chef prompt
func BuildRecipePrompt(req types.RecipeRequest) string {
	return fmt.Sprintf(recipePromptTemplate, req.Ingredients, req.DietaryRestrictions, req.CuisineType)
}
