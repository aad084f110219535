package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficulty_Setting(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		expected   Setting
	}{
		{DifficultyEasy, Setting{MaxWrong: 8, HintAllowed: true, Multiplier: 1}},
		{DifficultyMedium, Setting{MaxWrong: 6, HintAllowed: true, Multiplier: 2}},
		{DifficultyHard, Setting{MaxWrong: 4, HintAllowed: false, Multiplier: 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.difficulty.Setting())
		})
	}
}

func TestDifficulty_Valid(t *testing.T) {
	for _, difficulty := range Difficulties() {
		assert.True(t, difficulty.Valid(), string(difficulty))
	}
	assert.False(t, Difficulty("nightmare").Valid())
	assert.False(t, Difficulty("").Valid())
}

func TestDifficulties_Order(t *testing.T) {
	assert.Equal(t,
		[]Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard},
		Difficulties(),
	)
}
