package handler

import (
	"io"
	"strings"

	"hangman/internal/domain"
)

// renderRound clears the screen and draws the full round state: gallows,
// category, attempts left, guessed letters, and the masked word
func (h *Handler) renderRound(round *domain.Round) {
	h.clearScreen()

	stage := round.WrongCount
	if stage > len(gallowsStages)-1 {
		stage = len(gallowsStages) - 1
	}
	h.println(styleInfo.Render(gallowsStages[stage]))

	h.println()
	h.println(styleAccent.Render("Category: " + capitalize(round.Category)))
	h.printf("Attempts remaining: %d\n", round.Remaining())

	if guesses := round.SortedGuesses(); len(guesses) > 0 {
		parts := make([]string, len(guesses))
		for i, letter := range guesses {
			parts[i] = string(letter)
		}
		h.printf("Letters guessed: %s\n", strings.Join(parts, ", "))
	}

	h.printf("\nWord: %s\n", maskWord(round))
}

// maskWord renders the word with guessed letters revealed and the rest as
// underscores
func maskWord(round *domain.Round) string {
	var b strings.Builder
	for _, letter := range round.Word {
		if round.Guessed[letter] {
			b.WriteString(styleGood.Render(string(letter)))
		} else {
			b.WriteString("_")
		}
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}

// clearScreen wipes the terminal and homes the cursor
func (h *Handler) clearScreen() {
	io.WriteString(h.out, "\033[2J\033[H")
}

// capitalize uppercases the first letter of an ASCII word
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
