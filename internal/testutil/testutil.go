package testutil

import (
	"math/rand"

	"hangman/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRand creates a deterministic random source for tests
func NewTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTestRound creates an in-progress round over a fixed word
func NewTestRound(word string, difficulty domain.Difficulty) *domain.Round {
	setting := difficulty.Setting()
	return &domain.Round{
		Word:        word,
		Category:    "fruits",
		Difficulty:  difficulty,
		Guessed:     make(map[rune]bool),
		MaxWrong:    setting.MaxWrong,
		HintAllowed: setting.HintAllowed,
		Status:      domain.StatusInProgress,
	}
}
