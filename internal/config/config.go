package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// ScoresFile is the path of the JSON high score file
	ScoresFile string
	// LogFile is the path of the debug log; empty disables logging so the
	// game screen stays clean
	LogFile string
	// Seed is the random seed; 0 means seed from the current time
	Seed int64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		ScoresFile: getEnv("HANGMAN_SCORES_FILE", "hangman_scores.json"),
		LogFile:    os.Getenv("HANGMAN_LOG_FILE"),
	}

	if raw := os.Getenv("HANGMAN_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("HANGMAN_SEED must be an integer: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
