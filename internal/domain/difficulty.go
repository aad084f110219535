package domain

// Difficulty identifies one of the three fixed difficulty levels
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Setting holds the rule parameters attached to a difficulty level
type Setting struct {
	MaxWrong    int
	HintAllowed bool
	Multiplier  int
}

var settings = map[Difficulty]Setting{
	DifficultyEasy:   {MaxWrong: 8, HintAllowed: true, Multiplier: 1},
	DifficultyMedium: {MaxWrong: 6, HintAllowed: true, Multiplier: 2},
	DifficultyHard:   {MaxWrong: 4, HintAllowed: false, Multiplier: 3},
}

// Difficulties returns all difficulty levels in menu order
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Setting returns the rule parameters for the difficulty
func (d Difficulty) Setting() Setting {
	return settings[d]
}

// Valid reports whether d is one of the three known levels
func (d Difficulty) Valid() bool {
	_, ok := settings[d]
	return ok
}
