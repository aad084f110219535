package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"hangman/internal/domain"
	"hangman/internal/service"

	"go.uber.org/zap"
)

// playRound runs one complete round from category selection to the play-again
// prompt. Reports whether the player wants another round.
func (h *Handler) playRound() bool {
	category, ok := h.selectCategory()
	if !ok {
		return false
	}
	difficulty, ok := h.selectDifficulty()
	if !ok {
		return false
	}

	round, err := h.game.StartRound(category, difficulty)
	if err != nil {
		h.logger.Error("Failed to start round", zap.Error(err))
		h.println(styleWarn.Render("Could not start the game. Returning to menu."))
		h.sleep(2 * time.Second)
		return false
	}

	outcome := h.guessLoop(round)

	if round.Status == domain.StatusAborted || h.eof {
		return false
	}

	h.renderRound(round)
	switch outcome {
	case domain.OutcomeWon:
		h.println()
		h.println(styleGood.Bold(true).Render("Congratulations! You guessed the word: " + round.Word))
		score := service.ComputeScore(difficulty, len(round.Word), round.WrongCount)
		h.printf("Your score: %d\n", score)
		if h.scores.RecordResult(difficulty, score) {
			h.println(styleBold.Render(fmt.Sprintf("New high score for %s difficulty!", difficulty)))
		}
	case domain.OutcomeLost:
		h.println()
		h.println(styleFail.Bold(true).Render("Game Over! The word was: " + round.Word))
	}

	h.sleep(2 * time.Second)
	again := h.readLine("\nPlay again? (y/n): ")
	return len(again) > 0 && (again[0] == 'y' || again[0] == 'Y')
}

// guessLoop renders the round and applies player input until the round is
// terminal or input runs out
func (h *Handler) guessLoop(round *domain.Round) domain.Outcome {
	for {
		h.renderRound(round)

		h.println("\nOptions:")
		h.println("- Enter a letter to guess")
		if round.HintAllowed && !round.HintUsed {
			h.println("- Enter '?' for a hint (can be used once)")
		}
		h.println("- Enter '!' to quit the game")

		input := h.readLine("\nYour choice: ")
		if h.eof {
			h.game.Abort(round)
			return domain.OutcomeContinue
		}

		switch input {
		case "!":
			h.game.Abort(round)
			h.println(styleWarn.Render("Game aborted. The word was: " + round.Word))
			h.sleep(2 * time.Second)
			return domain.OutcomeContinue
		case "?":
			h.handleHint(round)
		default:
			outcome, done := h.handleGuess(round, input)
			if done {
				return outcome
			}
		}
	}
}

// handleHint requests a hint and reports the result to the player
func (h *Handler) handleHint(round *domain.Round) {
	letter, found, err := h.game.RequestHint(round)
	if err != nil {
		h.println(styleWarn.Render("No hint available."))
		h.sleep(time.Second)
		return
	}
	if !found {
		h.println(styleAccent.Render("Hint: every letter is already revealed."))
	} else {
		h.println(styleAccent.Render(fmt.Sprintf("Hint: Try the letter '%c'", letter)))
	}
	h.sleep(2 * time.Second)
}

// handleGuess submits one letter; done is true once the round is terminal
func (h *Handler) handleGuess(round *domain.Round, input string) (domain.Outcome, bool) {
	wrongBefore := round.WrongCount

	outcome, err := h.game.SubmitGuess(round, input)
	switch {
	case errors.Is(err, domain.ErrAlreadyGuessed):
		h.println(styleWarn.Render("You've already guessed that letter."))
		h.sleep(time.Second)
		return outcome, false
	case err != nil:
		h.println(styleWarn.Render("Please enter a single letter."))
		h.sleep(time.Second)
		return outcome, false
	}

	if outcome != domain.OutcomeContinue {
		return outcome, true
	}

	if round.WrongCount > wrongBefore {
		h.println(styleFail.Render("Wrong guess!"))
	} else {
		h.println(styleGood.Render("Good guess!"))
	}
	h.sleep(time.Second)
	return outcome, false
}

// selectCategory prompts for a 1-based category index
func (h *Handler) selectCategory() (string, bool) {
	categories := h.game.Categories()

	h.clearScreen()
	h.println(styleHeader.Render("Select a Word Category:"))
	for i, category := range categories {
		h.printf("%d. %s\n", i+1, capitalize(category))
	}

	for {
		input := h.readLine(fmt.Sprintf("\nEnter your choice (1-%d): ", len(categories)))
		if h.eof {
			return "", false
		}

		choice, err := strconv.Atoi(input)
		if err != nil {
			h.println(styleWarn.Render("Please enter a valid number."))
			continue
		}
		if choice < 1 || choice > len(categories) {
			h.println(styleWarn.Render(fmt.Sprintf(
				"Invalid choice. Please enter a number between 1 and %d.", len(categories))))
			continue
		}
		return categories[choice-1], true
	}
}

// selectDifficulty prompts for a difficulty index, listing each level's rules
func (h *Handler) selectDifficulty() (domain.Difficulty, bool) {
	difficulties := domain.Difficulties()

	h.clearScreen()
	h.println(styleHeader.Render("Select Difficulty Level:"))
	for i, difficulty := range difficulties {
		setting := difficulty.Setting()
		hint := "hints available"
		if !setting.HintAllowed {
			hint = "no hints"
		}
		h.printf("%d. %s (%d wrong guesses allowed, %s)\n",
			i+1, capitalize(string(difficulty)), setting.MaxWrong, hint)
	}

	for {
		input := h.readLine(fmt.Sprintf("\nEnter your choice (1-%d): ", len(difficulties)))
		if h.eof {
			return "", false
		}

		choice, err := strconv.Atoi(input)
		if err != nil {
			h.println(styleWarn.Render("Please enter a valid number."))
			continue
		}
		if choice < 1 || choice > len(difficulties) {
			h.println(styleWarn.Render("Invalid choice. Please enter 1, 2, or 3."))
			continue
		}
		return difficulties[choice-1], true
	}
}
