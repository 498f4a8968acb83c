package main

import "testing"

func TestGame_WinningRound(t *testing.T) {
	g := NewGame("go")

	if got := g.Masked(); got != "_ _" {
		t.Errorf("Masked() = %q, want \"_ _\"", got)
	}
	if got := g.Guess('g'); got != Hit {
		t.Errorf("Guess('g') = %v, want Hit", got)
	}
	if g.Won() {
		t.Error("Won() with letters still hidden")
	}
	if got := g.Guess('o'); got != Hit {
		t.Errorf("Guess('o') = %v, want Hit", got)
	}
	if !g.Won() || g.Lost() {
		t.Errorf("Won() = %v, Lost() = %v after guessing every letter", g.Won(), g.Lost())
	}
	if g.AttemptsLeft() != maxAttempts {
		t.Errorf("AttemptsLeft() = %d, hits must not cost attempts", g.AttemptsLeft())
	}
}

func TestGame_LosingRound(t *testing.T) {
	g := NewGame("go")

	for i, letter := range "abcdef" {
		if got := g.Guess(letter); got != Miss {
			t.Fatalf("Guess(%q) = %v, want Miss", letter, got)
		}
		if want := maxAttempts - i - 1; g.AttemptsLeft() != want {
			t.Fatalf("AttemptsLeft() = %d after %d misses, want %d", g.AttemptsLeft(), i+1, want)
		}
	}
	if !g.Lost() || g.Won() {
		t.Errorf("Won() = %v, Lost() = %v after using up every attempt", g.Won(), g.Lost())
	}
}

func TestGame_RepeatedGuessIsFree(t *testing.T) {
	g := NewGame("go")

	g.Guess('z')
	if got := g.Guess('z'); got != Repeated {
		t.Errorf("second Guess('z') = %v, want Repeated", got)
	}
	if g.AttemptsLeft() != maxAttempts-1 {
		t.Errorf("AttemptsLeft() = %d, repeated miss must not cost a second attempt", g.AttemptsLeft())
	}

	g.Guess('g')
	if got := g.Guess('g'); got != Repeated {
		t.Errorf("repeated hit = %v, want Repeated", got)
	}
}

func TestGame_MaskedRevealsHits(t *testing.T) {
	g := NewGame("hangman")
	g.Guess('a')
	g.Guess('n')
	if got := g.Masked(); got != "_ a n _ _ a n" {
		t.Errorf("Masked() = %q, want \"_ a n _ _ a n\"", got)
	}
}
