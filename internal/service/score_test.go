package service

import (
	"errors"
	"path/filepath"
	"testing"

	"hangman/internal/domain"
	"hangman/internal/repository/jsonfile"
	"hangman/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name       string
		difficulty domain.Difficulty
		wordLength int
		wrongCount int
		expected   int
	}{
		{
			name:       "easy flawless",
			difficulty: domain.DifficultyEasy,
			wordLength: 5,
			wrongCount: 0,
			expected:   50,
		},
		{
			name:       "medium with two misses",
			difficulty: domain.DifficultyMedium,
			wordLength: 5,
			wrongCount: 2,
			expected:   80,
		},
		{
			name:       "floor at zero before multiplier",
			difficulty: domain.DifficultyHard,
			wordLength: 3,
			wrongCount: 10,
			expected:   0,
		},
		{
			name:       "hard flawless",
			difficulty: domain.DifficultyHard,
			wordLength: 5,
			wrongCount: 0,
			expected:   150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ComputeScore(tt.difficulty, tt.wordLength, tt.wrongCount)
			assert.Equal(t, tt.expected, score)
		})
	}
}

func TestScoreService_HighScores(t *testing.T) {
	tests := []struct {
		name       string
		mockRecord domain.ScoreRecord
		mockError  error
		expected   domain.ScoreRecord
	}{
		{
			name:       "stored record returned",
			mockRecord: domain.ScoreRecord{Easy: 40, Medium: 80, Hard: 150},
			expected:   domain.ScoreRecord{Easy: 40, Medium: 80, Hard: 150},
		},
		{
			name:      "unreadable store defaults to zeros",
			mockError: errors.New("no such file"),
			expected:  domain.ScoreRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockScoreRepository)
			mockRepo.On("Load").Return(tt.mockRecord, tt.mockError)

			service := NewScoreService(mockRepo, testutil.NewTestLogger())

			assert.Equal(t, tt.expected, service.HighScores())
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestScoreService_RecordResult(t *testing.T) {
	tests := []struct {
		name            string
		difficulty      domain.Difficulty
		score           int
		mockRecord      domain.ScoreRecord
		mockLoadError   error
		expectStore     bool
		expectedRecord  domain.ScoreRecord
		mockStoreError  error
		expectedUpdated bool
	}{
		{
			name:            "higher score updates",
			difficulty:      domain.DifficultyEasy,
			score:           50,
			mockRecord:      domain.ScoreRecord{Easy: 40},
			expectStore:     true,
			expectedRecord:  domain.ScoreRecord{Easy: 50},
			expectedUpdated: true,
		},
		{
			name:            "lower score is ignored",
			difficulty:      domain.DifficultyEasy,
			score:           30,
			mockRecord:      domain.ScoreRecord{Easy: 40},
			expectedUpdated: false,
		},
		{
			name:            "equal score is ignored",
			difficulty:      domain.DifficultyMedium,
			score:           80,
			mockRecord:      domain.ScoreRecord{Medium: 80},
			expectedUpdated: false,
		},
		{
			name:            "unreadable store treated as zeros",
			difficulty:      domain.DifficultyHard,
			score:           150,
			mockLoadError:   errors.New("corrupt"),
			expectStore:     true,
			expectedRecord:  domain.ScoreRecord{Hard: 150},
			expectedUpdated: true,
		},
		{
			name:            "failed write reported as no update",
			difficulty:      domain.DifficultyEasy,
			score:           50,
			mockRecord:      domain.ScoreRecord{Easy: 40},
			expectStore:     true,
			expectedRecord:  domain.ScoreRecord{Easy: 50},
			mockStoreError:  errors.New("disk full"),
			expectedUpdated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockScoreRepository)
			mockRepo.On("Load").Return(tt.mockRecord, tt.mockLoadError)
			if tt.expectStore {
				mockRepo.On("Store", tt.expectedRecord).Return(tt.mockStoreError)
			}

			service := NewScoreService(mockRepo, testutil.NewTestLogger())

			updated := service.RecordResult(tt.difficulty, tt.score)

			assert.Equal(t, tt.expectedUpdated, updated)
			mockRepo.AssertExpectations(t)
		})
	}
}

// Exercises the strictly-greater rule end to end against the real JSON store.
func TestScoreService_RecordResult_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	repo := jsonfile.NewScoreRepo(path)
	service := NewScoreService(repo, testutil.NewTestLogger())

	assert.Equal(t, domain.ScoreRecord{}, service.HighScores())

	assert.True(t, service.RecordResult(domain.DifficultyEasy, 40))
	assert.False(t, service.RecordResult(domain.DifficultyEasy, 30))
	assert.Equal(t, 40, service.HighScores().Easy)

	assert.True(t, service.RecordResult(domain.DifficultyEasy, 50))
	assert.Equal(t, 50, service.HighScores().Easy)
}
