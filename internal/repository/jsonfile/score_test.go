package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"hangman/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRepo_StoreAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	repo := NewScoreRepo(path)

	record := domain.ScoreRecord{Easy: 40, Medium: 80, Hard: 150}
	require.NoError(t, repo.Store(record))

	loaded, err := repo.Load()

	assert.NoError(t, err)
	assert.Equal(t, record, loaded)

	// The file must carry exactly the three difficulty keys
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"easy":40,"medium":80,"hard":150}`, string(data))
}

func TestScoreRepo_Load_MissingFile(t *testing.T) {
	repo := NewScoreRepo(filepath.Join(t.TempDir(), "absent.json"))

	record, err := repo.Load()

	assert.Error(t, err)
	assert.Equal(t, domain.ScoreRecord{}, record)
}

func TestScoreRepo_Load_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	repo := NewScoreRepo(path)

	record, err := repo.Load()

	assert.Error(t, err)
	assert.Equal(t, domain.ScoreRecord{}, record)
}

func TestScoreRepo_Store_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	repo := NewScoreRepo(path)

	require.NoError(t, repo.Store(domain.ScoreRecord{Easy: 10}))
	require.NoError(t, repo.Store(domain.ScoreRecord{Easy: 20, Hard: 30}))

	loaded, err := repo.Load()

	assert.NoError(t, err)
	assert.Equal(t, domain.ScoreRecord{Easy: 20, Hard: 30}, loaded)
}
