package domain

import (
	"sort"
	"strings"
)

// Status represents the lifecycle state of a round
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
	StatusAborted    Status = "aborted"
)

// Outcome is the result of submitting one guess
type Outcome string

const (
	OutcomeContinue Outcome = "continue"
	OutcomeWon      Outcome = "won"
	OutcomeLost     Outcome = "lost"
)

// Round holds the mutable state of one hangman round.
// It is owned exclusively by the game service for the duration of the round.
type Round struct {
	Word        string
	Category    string
	Difficulty  Difficulty
	Guessed     map[rune]bool
	WrongCount  int
	MaxWrong    int
	HintAllowed bool
	HintUsed    bool
	Status      Status
}

// Finished reports whether the round reached a terminal state
func (r *Round) Finished() bool {
	return r.Status != StatusInProgress
}

// Remaining returns how many wrong guesses are left before the round is lost
func (r *Round) Remaining() int {
	remaining := r.MaxWrong - r.WrongCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// AllRevealed reports whether every letter of the word has been guessed
func (r *Round) AllRevealed() bool {
	for _, letter := range r.Word {
		if !r.Guessed[letter] {
			return false
		}
	}
	return true
}

// SortedGuesses returns all guessed letters in alphabetical order
func (r *Round) SortedGuesses() []rune {
	letters := make([]rune, 0, len(r.Guessed))
	for letter := range r.Guessed {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// UnguessedLetters returns the distinct letters of the word that have not
// been guessed yet, in alphabetical order
func (r *Round) UnguessedLetters() []rune {
	seen := make(map[rune]bool)
	var letters []rune
	for _, letter := range r.Word {
		if !r.Guessed[letter] && !seen[letter] {
			seen[letter] = true
			letters = append(letters, letter)
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// Contains reports whether the word contains the letter
func (r *Round) Contains(letter rune) bool {
	return strings.ContainsRune(r.Word, letter)
}
