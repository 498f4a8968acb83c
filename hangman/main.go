// Command hangman is a terminal hangman game on a fixed word list.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"unicode"
)

func main() {
	game := NewGame(words[rand.Intn(len(words))])
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to Hangman!")
	for !game.Lost() {
		fmt.Println("\nWord: ", game.Masked())
		fmt.Println("Attempts left:", game.AttemptsLeft())
		fmt.Print("Guess a letter: ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if len(input) != 1 || !unicode.IsLetter(rune(input[0])) {
			fmt.Println("Please enter a single letter.")
			continue
		}

		switch game.Guess(rune(input[0])) {
		case Repeated:
			fmt.Println("You already guessed that letter.")
		case Hit:
			fmt.Println("Good guess!")
		case Miss:
			fmt.Println("Wrong guess!")
		}

		if game.Won() {
			fmt.Println("\nCongratulations! You guessed the word:", game.Word())
			return
		}
	}
	fmt.Println("\nGame Over! The word was:", game.Word())
}
