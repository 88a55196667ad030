package codec

import (
	"strings"

	"github.com/npillmayer/morse"
	"golang.org/x/text/unicode/norm"
)

// Encode translates plaintext to Morse text. Encoding stops at the first
// character not contained in the symbol table, returning a
// *morse.UnknownCharError. Empty or all-whitespace plaintext encodes to
// the empty string.
func (t *Translator) Encode(plaintext string) (string, error) {
	s, err := t.EncodeSentence(plaintext)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// EncodeSentence is like Encode, but returns the structured Morse sentence.
func (t *Translator) EncodeSentence(plaintext string) (morse.Sentence, error) {
	words := t.words(plaintext)
	sentence := make(morse.Sentence, 0, len(words))
	for i, w := range words {
		word := make(morse.Word, 0, len(w))
		j := 0
		for _, r := range w {
			code, err := t.table.Code(r)
			if err != nil {
				uerr := &morse.UnknownCharError{Pos: morse.At(i, j), Char: r}
				tracer().Infof("%v", uerr)
				return nil, uerr
			}
			word = append(word, code)
			j++
		}
		sentence = append(sentence, word)
	}
	return sentence, nil
}

// words lowercases and normalizes plaintext and splits it into words at
// runs of ASCII whitespace.
func (t *Translator) words(plaintext string) []string {
	text := t.casing.Lower(plaintext)
	if t.normalize {
		text = norm.NFC.String(text)
	}
	return strings.FieldsFunc(text, isSpace)
}

// isSpace is true for ASCII whitespace.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
