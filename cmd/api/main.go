package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/app"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/server"
)

func main() {
	// Listen for an interrupt or terminate signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, "")
	if err != nil {
		log.Fatalf("Startup error: %v", err)
	}
	defer a.Close()

	srv := server.New(a.Config, a.RecipeService, a.Logger)
	if err := srv.Run(ctx); err != nil {
		a.Logger.Fatal("server error", zap.Error(err))
	}
}
