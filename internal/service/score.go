package service

import (
	"hangman/internal/domain"
	"hangman/internal/repository"

	"go.uber.org/zap"
)

// ComputeScore returns the score for a won round.
// The base score is floored at zero before the difficulty multiplier applies.
func ComputeScore(difficulty domain.Difficulty, wordLength, wrongCount int) int {
	base := wordLength*10 - wrongCount*5
	if base < 0 {
		base = 0
	}
	return base * difficulty.Setting().Multiplier
}

// ScoreService owns the high score policy on top of the score repository
type ScoreService struct {
	repo   repository.ScoreRepository
	logger *zap.Logger
}

// NewScoreService creates a new score service
func NewScoreService(repo repository.ScoreRepository, logger *zap.Logger) *ScoreService {
	return &ScoreService{
		repo:   repo,
		logger: logger,
	}
}

// HighScores returns the stored best scores per difficulty.
// A missing or corrupt backing store yields the all-zero record; it is
// never surfaced as a failure to the caller.
func (s *ScoreService) HighScores() domain.ScoreRecord {
	record, err := s.repo.Load()
	if err != nil {
		s.logger.Warn("Score store unreadable, defaulting to zero scores", zap.Error(err))
		return domain.ScoreRecord{}
	}
	return record
}

// RecordResult persists score under the difficulty only if it is strictly
// greater than the stored best. Returns whether an update occurred.
// A failed write is logged and reported as no update.
func (s *ScoreService) RecordResult(difficulty domain.Difficulty, score int) bool {
	record := s.HighScores()
	if score <= record.Best(difficulty) {
		return false
	}

	record.SetBest(difficulty, score)
	if err := s.repo.Store(record); err != nil {
		s.logger.Error("Failed to store high scores", zap.Error(err))
		return false
	}

	s.logger.Info("New high score",
		zap.String("difficulty", string(difficulty)),
		zap.Int("score", score),
	)
	return true
}
