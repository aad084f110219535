package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"hangman/internal/config"
	"hangman/internal/handler"
	"hangman/internal/repository/jsonfile"
	"hangman/internal/service"
	"hangman/internal/wordbank"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting hangman",
		zap.String("scores_file", cfg.ScoresFile),
		zap.Int64("seed", cfg.Seed),
	)

	// Seedable random source, shared by word selection and hints
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Initialize repositories
	scoreRepo := jsonfile.NewScoreRepo(cfg.ScoresFile)

	// Initialize services
	gameService := service.NewGameService(wordbank.New(rng), rng, logger)
	scoreService := service.NewScoreService(scoreRepo, logger)

	// Run the interactive session
	h := handler.NewHandler(os.Stdin, os.Stdout, gameService, scoreService, logger)
	h.Run()

	logger.Info("Session ended")
}

// newLogger builds a file-backed zap logger, or a no-op logger when no log
// path is configured. Logging to the terminal would overwrite the game screen.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{path}
	logCfg.ErrorOutputPaths = []string{path}
	return logCfg.Build()
}
