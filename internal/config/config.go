package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	JWTSecret    string
	SeedDatabase bool // Opt-in: drop, recreate and reseed all tables at startup
}

// Load loads configuration from environment variables or sets defaults.
// The JWT secret has no default: signing tokens with an empty secret is a
// misconfiguration, so its absence fails the load.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./review-board.db"),
		JWTSecret:    secret,
		SeedDatabase: getEnv("SEED_DATABASE", "false") == "true",
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
