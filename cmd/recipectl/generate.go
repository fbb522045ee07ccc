package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/app"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/types"
)

var (
	ingredients         string
	dietaryRestrictions string
	cuisineType         string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a recipe and print it as markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := types.RecipeRequest{
			Ingredients:         ingredients,
			DietaryRestrictions: dietaryRestrictions,
			CuisineType:         cuisineType,
		}

		a, err := app.New(cmd.Context(), logLevel)
		if err != nil {
			return err
		}
		defer a.Close()

		recipe, err := a.RecipeService.GenerateRecipe(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("failed to generate recipe: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), recipe)
		return err
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&ingredients, "ingredients", "i", "", "Main ingredients, e.g. \"chicken, rice\"")
	generateCmd.Flags().StringVarP(&dietaryRestrictions, "dietary", "d", types.DefaultDietaryRestrictions, "Dietary restrictions")
	generateCmd.Flags().StringVarP(&cuisineType, "cuisine", "c", types.DefaultCuisineType, "Desired cuisine")
	_ = generateCmd.MarkFlagRequired("ingredients")
}
