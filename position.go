package morse

import "fmt"

// Position locates a character within a text which has been split into
// words. Both indices are 0-based.
type Position struct {
	Word int // index of the word
	Char int // index of the character within the word
}

// At is a shortcut for creating a Position.
func At(word, char int) Position {
	return Position{Word: word, Char: char}
}

// String renders a position for humans, i.e. with 1-based indices:
// "(word 1, char 3)".
func (p Position) String() string {
	return fmt.Sprintf("(word %d, char %d)", p.Word+1, p.Char+1)
}
