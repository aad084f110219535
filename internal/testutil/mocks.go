package testutil

import (
	"hangman/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockScoreRepository is a mock for ScoreRepository
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) Load() (domain.ScoreRecord, error) {
	args := m.Called()
	return args.Get(0).(domain.ScoreRecord), args.Error(1)
}

func (m *MockScoreRepository) Store(record domain.ScoreRecord) error {
	args := m.Called(record)
	return args.Error(0)
}
