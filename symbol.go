package morse

import (
	"fmt"
)

// Symbol is a single Morse mark, either a Dot or a Dash.
type Symbol uint8

// The two Morse symbols.
const (
	Dot Symbol = iota
	Dash
)

// String renders a symbol as '.' or '-'.
func (s Symbol) String() string {
	switch s {
	case Dot:
		return "."
	case Dash:
		return "-"
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// Rune returns the character used to render s.
func (s Symbol) Rune() rune {
	if s == Dash {
		return '-'
	}
	return '.'
}

// SymbolFor maps '.' to Dot and '-' to Dash. For every other rune the second
// return value is false.
func SymbolFor(r rune) (Symbol, bool) {
	switch r {
	case '.':
		return Dot, true
	case '-':
		return Dash, true
	}
	return Dot, false
}

// --- Coded Characters ------------------------------------------------------

// CodedChar is the Morse code for a single plaintext character, i.e. a
// sequence of symbols. CodedChars produced by the parser are never empty.
type CodedChar []Symbol

// CodedCharFromString creates a CodedChar from its rendered form, e.g. ".-".
// Any rune other than '.' or '-' will result in an error wrapping
// ErrInvalidSymbol.
func CodedCharFromString(s string) (CodedChar, error) {
	c := make(CodedChar, 0, len(s))
	for _, r := range s {
		sym, ok := SymbolFor(r)
		if !ok {
			return nil, fmt.Errorf("%w '%c' in %q", ErrInvalidSymbol, r, s)
		}
		c = append(c, sym)
	}
	return c, nil
}

// MustCodedChar is like CodedCharFromString, but panics on invalid input.
// It is intended for initializing tables from literals.
func MustCodedChar(s string) CodedChar {
	c, err := CodedCharFromString(s)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// String concatenates the renderings of all symbols of c, without separator.
func (c CodedChar) String() string {
	b := make([]byte, len(c))
	for i, sym := range c {
		b[i] = byte(sym.Rune())
	}
	return string(b)
}

// Key returns a value suitable as a map key for c. Rendering is injective,
// therefore equal keys denote equal CodedChars.
func (c CodedChar) Key() string {
	return c.String()
}

// Equal is structural equality.
func (c CodedChar) Equal(other CodedChar) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// --- Words and Sentences ---------------------------------------------------

// Word is the Morse code for a plaintext word, i.e. a sequence of CodedChars.
type Word []CodedChar

// String joins the CodedChars of w with a single space. An empty word
// renders as the empty string.
func (w Word) String() string {
	buf := borrowBuffer()
	defer releaseBuffer(buf)
	writeWord(buf, w)
	return buf.String()
}

// Equal is structural equality.
func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if !w[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Sentence is a complete Morse message, i.e. a sequence of Words.
type Sentence []Word

// String joins the words of s with " / ". An empty sentence renders as the
// empty string.
func (s Sentence) String() string {
	buf := borrowBuffer()
	defer releaseBuffer(buf)
	for i, w := range s {
		if i > 0 {
			buf.WriteString(WordSeparator)
		}
		writeWord(buf, w)
	}
	return buf.String()
}

// Equal is structural equality.
func (s Sentence) Equal(other Sentence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// CharCount returns the total number of CodedChars in s.
func (s Sentence) CharCount() int {
	n := 0
	for _, w := range s {
		n += len(w)
	}
	return n
}
