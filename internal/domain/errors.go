package domain

import "errors"

// Rule violations recovered locally by the console shell.
var (
	ErrInvalidGuess    = errors.New("guess must be a single letter")
	ErrAlreadyGuessed  = errors.New("letter was already guessed")
	ErrHintUnavailable = errors.New("hint is not available")
	ErrRoundOver       = errors.New("round is already over")
)
