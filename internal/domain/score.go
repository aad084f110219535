package domain

// ScoreRecord holds the best score ever achieved per difficulty.
// The zero value is the "no scores yet" record.
type ScoreRecord struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Best returns the stored best score for the difficulty
func (s ScoreRecord) Best(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return s.Easy
	case DifficultyMedium:
		return s.Medium
	case DifficultyHard:
		return s.Hard
	}
	return 0
}

// SetBest overwrites the stored best score for the difficulty
func (s *ScoreRecord) SetBest(d Difficulty, score int) {
	switch d {
	case DifficultyEasy:
		s.Easy = score
	case DifficultyMedium:
		s.Medium = score
	case DifficultyHard:
		s.Hard = score
	}
}
