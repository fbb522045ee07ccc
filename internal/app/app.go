package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-recipe-generator/backend/config"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/logger"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/service"
)

// App holds the process-scoped dependencies shared by every request
type App struct {
	Config        *config.Config
	Logger        *zap.Logger
	RecipeService *service.RecipeService
}

// New loads configuration and builds the logger and the provider client.
// logLevel overrides LOG_LEVEL when non-empty.
func New(ctx context.Context, logLevel string) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	generator, err := service.NewGeminiGenerator(ctx, service.GeminiConfig{
		APIKey:  cfg.GoogleAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		return nil, err
	}
	log.Info("provider client ready", zap.String("model", generator.Model()))

	return &App{
		Config:        cfg,
		Logger:        log,
		RecipeService: service.NewRecipeService(generator),
	}, nil
}

// Close flushes the logger
func (a *App) Close() {
	logger.Sync(a.Logger)
}
