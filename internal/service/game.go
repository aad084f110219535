package service

import (
	"fmt"
	"math/rand"
	"strings"

	"hangman/internal/domain"
	"hangman/internal/wordbank"

	"go.uber.org/zap"
)

// GameService enforces the rules of a single hangman round
type GameService struct {
	bank   *wordbank.Bank
	rng    *rand.Rand
	logger *zap.Logger
}

// NewGameService creates a new game service
func NewGameService(bank *wordbank.Bank, rng *rand.Rand, logger *zap.Logger) *GameService {
	return &GameService{
		bank:   bank,
		rng:    rng,
		logger: logger,
	}
}

// Categories returns the selectable word categories in menu order
func (s *GameService) Categories() []string {
	return s.bank.Categories()
}

// StartRound draws a random word from the category and creates a fresh round
func (s *GameService) StartRound(category string, difficulty domain.Difficulty) (*domain.Round, error) {
	if !difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	word, err := s.bank.RandomWord(category)
	if err != nil {
		return nil, err
	}

	setting := difficulty.Setting()
	round := &domain.Round{
		Word:        word,
		Category:    category,
		Difficulty:  difficulty,
		Guessed:     make(map[rune]bool),
		MaxWrong:    setting.MaxWrong,
		HintAllowed: setting.HintAllowed,
		Status:      domain.StatusInProgress,
	}

	s.logger.Info("Round started",
		zap.String("category", category),
		zap.String("difficulty", string(difficulty)),
		zap.Int("word_length", len(word)),
	)

	return round, nil
}

// SubmitGuess validates and applies one guessed letter.
// Invalid or repeated guesses are rejected without mutating the round.
// Win is checked before loss; a winning guess never increments the wrong
// count, so the order is a fixed tie-break rather than a reachable choice.
func (s *GameService) SubmitGuess(round *domain.Round, input string) (domain.Outcome, error) {
	if round.Finished() {
		return "", domain.ErrRoundOver
	}

	letter, ok := normalizeGuess(input)
	if !ok {
		return "", domain.ErrInvalidGuess
	}
	if round.Guessed[letter] {
		return "", domain.ErrAlreadyGuessed
	}

	round.Guessed[letter] = true
	if !round.Contains(letter) {
		round.WrongCount++
	}

	switch {
	case round.AllRevealed():
		round.Status = domain.StatusWon
		s.logger.Info("Round won",
			zap.String("word", round.Word),
			zap.Int("wrong_count", round.WrongCount),
		)
		return domain.OutcomeWon, nil
	case round.WrongCount >= round.MaxWrong:
		round.Status = domain.StatusLost
		s.logger.Info("Round lost", zap.String("word", round.Word))
		return domain.OutcomeLost, nil
	}

	return domain.OutcomeContinue, nil
}

// RequestHint reveals one letter of the word that has not been guessed yet,
// chosen uniformly at random. The hint is consumed even when the whole word
// is already revealed, in which case found is false.
func (s *GameService) RequestHint(round *domain.Round) (letter rune, found bool, err error) {
	if round.Finished() {
		return 0, false, domain.ErrRoundOver
	}
	if !round.HintAllowed || round.HintUsed {
		return 0, false, domain.ErrHintUnavailable
	}

	round.HintUsed = true

	candidates := round.UnguessedLetters()
	if len(candidates) == 0 {
		return 0, false, nil
	}

	letter = candidates[s.rng.Intn(len(candidates))]
	s.logger.Info("Hint revealed", zap.String("letter", string(letter)))
	return letter, true, nil
}

// Abort terminates an in-progress round with no score
func (s *GameService) Abort(round *domain.Round) {
	if round.Finished() {
		return
	}
	round.Status = domain.StatusAborted
	s.logger.Info("Round aborted", zap.String("word", round.Word))
}

// normalizeGuess lowercases the input and checks that it is exactly one
// ASCII letter
func normalizeGuess(input string) (rune, bool) {
	runes := []rune(strings.ToLower(strings.TrimSpace(input)))
	if len(runes) != 1 {
		return 0, false
	}
	letter := runes[0]
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	return letter, true
}
