package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"hangman/internal/domain"
)

// ScoreRepo implements repository.ScoreRepository on a single JSON file.
// The file holds one ScoreRecord with exactly the keys easy/medium/hard.
type ScoreRepo struct {
	path string
}

// NewScoreRepo creates a score repository backed by the file at path
func NewScoreRepo(path string) *ScoreRepo {
	return &ScoreRepo{path: path}
}

// Load reads the score record from the backing file.
// A missing or unreadable file is reported as an error; the caller decides
// how to recover.
func (r *ScoreRepo) Load() (domain.ScoreRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return domain.ScoreRecord{}, err
	}

	var record domain.ScoreRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("failed to decode %s: %w", r.path, err)
	}

	return record, nil
}

// Store writes the score record to the backing file, replacing its contents
func (r *ScoreRepo) Store(record domain.ScoreRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}
	return os.WriteFile(r.path, data, 0644)
}
