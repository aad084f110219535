package repository

import "hangman/internal/domain"

// ScoreRepository defines high score persistence operations
type ScoreRepository interface {
	Load() (domain.ScoreRecord, error)
	Store(domain.ScoreRecord) error
}
