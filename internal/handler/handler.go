package handler

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"hangman/internal/service"

	"go.uber.org/zap"
)

// Handler drives the interactive console session
type Handler struct {
	in     *bufio.Scanner
	out    io.Writer
	game   *service.GameService
	scores *service.ScoreService
	logger *zap.Logger

	// sleep inserts cosmetic pauses between messages; tests replace it
	// with a no-op
	sleep func(time.Duration)
	// eof is set once input runs out so every loop can unwind cleanly
	eof bool
}

// NewHandler creates a new handler reading player input from in and writing
// the game screen to out
func NewHandler(
	in io.Reader,
	out io.Writer,
	game *service.GameService,
	scores *service.ScoreService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		in:     bufio.NewScanner(in),
		out:    out,
		game:   game,
		scores: scores,
		logger: logger,
		sleep:  time.Sleep,
	}
}

// Run shows the welcome screen and loops the main menu until the player exits
func (h *Handler) Run() {
	h.showWelcome()

	for !h.eof {
		h.clearScreen()
		h.println(styleHeader.Render("ENHANCED HANGMAN"))
		h.println(styleAccent.Render("===================="))
		h.println("1. Play Game")
		h.println("2. View High Scores")
		h.println("3. Exit")
		h.println(styleAccent.Render("===================="))

		choice := h.readLine("\nEnter your choice (1-3): ")

		switch choice {
		case "1":
			for h.playRound() {
			}
		case "2":
			h.showHighScores()
		case "3":
			h.clearScreen()
			h.println(styleGood.Render("Thanks for playing Enhanced Hangman! Goodbye!"))
			return
		default:
			if h.eof {
				return
			}
			h.println(styleWarn.Render("Invalid choice. Please enter 1, 2, or 3."))
			h.sleep(time.Second)
		}
	}
}

// showWelcome prints the rules and waits for Enter
func (h *Handler) showWelcome() {
	h.clearScreen()
	h.println(styleHeader.Render("WELCOME TO ENHANCED HANGMAN!"))
	h.println(styleAccent.Render("=========================="))
	h.println(styleInfo.Render("How to play:"))
	h.println("1. Choose a category and difficulty level")
	h.println("2. Guess letters to reveal the hidden word")
	h.println("3. You win if you guess the word before the hangman is complete")
	h.println("4. You lose if the hangman is complete before you guess the word")
	h.println(styleAccent.Render("=========================="))
	h.readLine("\nPress Enter to continue...")
}

// showHighScores prints the best score per difficulty
func (h *Handler) showHighScores() {
	h.clearScreen()
	record := h.scores.HighScores()

	h.println(styleHeader.Render("HIGH SCORES"))
	h.println(styleAccent.Render("===================="))
	h.printf("Easy: %d\n", record.Easy)
	h.printf("Medium: %d\n", record.Medium)
	h.printf("Hard: %d\n", record.Hard)
	h.println(styleAccent.Render("===================="))

	h.readLine("\nPress Enter to continue...")
}

// readLine prints the prompt and reads one trimmed line of input.
// Returns the empty string once input is exhausted.
func (h *Handler) readLine(prompt string) string {
	fmt.Fprint(h.out, prompt)
	if !h.in.Scan() {
		h.eof = true
		return ""
	}
	return strings.TrimSpace(h.in.Text())
}

func (h *Handler) println(a ...any) {
	fmt.Fprintln(h.out, a...)
}

func (h *Handler) printf(format string, a ...any) {
	fmt.Fprintf(h.out, format, a...)
}
