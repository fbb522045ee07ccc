package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/app"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recipe HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := app.New(ctx, logLevel)
		if err != nil {
			return err
		}
		defer a.Close()

		return server.New(a.Config, a.RecipeService, a.Logger).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
