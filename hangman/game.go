package main

import (
	"strings"
)

// maxAttempts is the number of incorrect guesses allowed.
const maxAttempts = 6

var words = []string{"python", "hangman", "developer", "challenge", "programming", "artificial"}

// Outcome classifies a single guess.
type Outcome int

const (
	// Repeated means the letter was already guessed, right or wrong.
	Repeated Outcome = iota
	// Hit means the letter is in the word.
	Hit
	// Miss means the letter is not in the word and costs an attempt.
	Miss
)

// Game tracks one hangman round.
type Game struct {
	word     string
	guessed  map[rune]bool
	attempts int
}

// NewGame starts a round on the given word.
func NewGame(word string) *Game {
	return &Game{
		word:     word,
		guessed:  make(map[rune]bool),
		attempts: maxAttempts,
	}
}

// Guess plays one letter. Repeated guesses are free, misses cost an attempt.
func (g *Game) Guess(letter rune) Outcome {
	if g.guessed[letter] {
		return Repeated
	}
	g.guessed[letter] = true
	if strings.ContainsRune(g.word, letter) {
		return Hit
	}
	g.attempts--
	return Miss
}

// Masked renders the word with unguessed letters blanked out.
func (g *Game) Masked() string {
	var b strings.Builder
	for i, letter := range g.word {
		if i > 0 {
			b.WriteByte(' ')
		}
		if g.guessed[letter] {
			b.WriteRune(letter)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// AttemptsLeft returns the number of misses still allowed.
func (g *Game) AttemptsLeft() int { return g.attempts }

// Word returns the word being guessed.
func (g *Game) Word() string { return g.word }

// Won reports whether every letter of the word has been guessed.
func (g *Game) Won() bool {
	for _, letter := range g.word {
		if !g.guessed[letter] {
			return false
		}
	}
	return true
}

// Lost reports whether the allowed attempts are used up.
func (g *Game) Lost() bool { return g.attempts <= 0 }
