package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRecord_BestAndSetBest(t *testing.T) {
	var record ScoreRecord

	for _, difficulty := range Difficulties() {
		assert.Zero(t, record.Best(difficulty), string(difficulty))
	}

	record.SetBest(DifficultyEasy, 40)
	record.SetBest(DifficultyMedium, 80)
	record.SetBest(DifficultyHard, 150)

	assert.Equal(t, ScoreRecord{Easy: 40, Medium: 80, Hard: 150}, record)
	assert.Equal(t, 40, record.Best(DifficultyEasy))
	assert.Equal(t, 80, record.Best(DifficultyMedium))
	assert.Equal(t, 150, record.Best(DifficultyHard))
}

func TestScoreRecord_UnknownDifficulty(t *testing.T) {
	record := ScoreRecord{Easy: 40}

	assert.Zero(t, record.Best(Difficulty("nightmare")))

	record.SetBest(Difficulty("nightmare"), 99)
	assert.Equal(t, ScoreRecord{Easy: 40}, record)
}
