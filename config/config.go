package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultServerPort  = "8000"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultLogLevel    = "info"

	apiKeySecret = "google_api_key"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Provider configuration
	GoogleAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	LogLevel    string
	Environment Environment
}

// LoadConfig creates a new Config from the process environment, an optional
// .env file and Docker secrets
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	apiKey, err := resolveAPIKey()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerHost:    os.Getenv("SERVER_HOST"),
		ServerPort:    getEnv("SERVER_PORT", DefaultServerPort),
		GoogleAPIKey:  apiKey,
		GeminiModel:   getEnv("GEMINI_MODEL", DefaultGeminiModel),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		LogLevel:      getEnv("LOG_LEVEL", DefaultLogLevel),
		Environment:   GetEnvironment(),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Address returns the host:port pair the HTTP server listens on
func (c *Config) Address() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// loadDotEnv reads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// resolveAPIKey looks for the provider key in GOOGLE_API_KEY, then the file
// named by GOOGLE_API_KEY_FILE, then the google_api_key Docker secret
func resolveAPIKey() (string, error) {
	if apiKey := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")); apiKey != "" {
		return apiKey, nil
	}

	if apiKeyFile := os.Getenv("GOOGLE_API_KEY_FILE"); apiKeyFile != "" {
		data, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		apiKey := strings.TrimSpace(string(data))
		if apiKey == "" {
			return "", ValidationError{Field: "GOOGLE_API_KEY_FILE", Message: "API key file is empty"}
		}
		return apiKey, nil
	}

	return readSecret(apiKeySecret), nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
