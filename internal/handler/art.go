package handler

// gallowsStages is the hangman drawing, one stage per wrong guess.
// Rounds with more wrong guesses than stages clamp to the last picture.
var gallowsStages = []string{
	`
      +---+
          |
          |
          |
         ===`,
	`
      +---+
      O   |
          |
          |
         ===`,
	`
      +---+
      O   |
      |   |
          |
         ===`,
	`
      +---+
      O   |
     /|   |
          |
         ===`,
	`
      +---+
      O   |
     /|\  |
          |
         ===`,
	`
      +---+
      O   |
     /|\  |
     /    |
         ===`,
	`
      +---+
      O   |
     /|\  |
     / \  |
         ===`,
}
