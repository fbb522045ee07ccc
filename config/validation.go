package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that cfg can be used to start the server
func ValidateConfig(cfg *Config) error {
	var errs []error

	if cfg.GoogleAPIKey == "" {
		errs = append(errs, ValidationError{
			Field:   "GOOGLE_API_KEY",
			Message: "environment variable not set. Please provide your API key",
		})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{
			Field:   "SERVER_PORT",
			Message: fmt.Sprintf("invalid port %q", cfg.ServerPort),
		})
	}

	if cfg.GeminiModel == "" {
		errs = append(errs, ValidationError{Field: "GEMINI_MODEL", Message: "model identifier is required"})
	}

	return errors.Join(errs...)
}
