package codec

import (
	"strings"

	"github.com/npillmayer/morse"
	"github.com/npillmayer/morse/parser"
)

// Unknown is the plaintext substitute for codes missing from the symbol
// table, used by DecodeAll.
const Unknown = '#'

// EncodeAll translates plaintext to Morse text, skipping every character
// which is not contained in the symbol table. Words left without any code
// are dropped. Every skipped character is reported as a
// *morse.UnknownCharError, in the order of occurrence.
func (t *Translator) EncodeAll(plaintext string) (string, []error) {
	var errs []error
	words := t.words(plaintext)
	sentence := make(morse.Sentence, 0, len(words))
	for i, w := range words {
		word := make(morse.Word, 0, len(w))
		j := 0
		for _, r := range w {
			if code, err := t.table.Code(r); err == nil {
				word = append(word, code)
			} else {
				errs = append(errs, &morse.UnknownCharError{Pos: morse.At(i, j), Char: r})
			}
			j++
		}
		if len(word) > 0 {
			sentence = append(sentence, word)
		}
	}
	tracer().Debugf("encoded with %d errors", len(errs))
	return sentence.String(), errs
}

// DecodeAll translates Morse text to plaintext, substituting Unknown for
// every code which is not contained in the symbol table. Every unknown code
// is reported as a *morse.UnknownCodeError, in the order of occurrence.
//
// Malformed Morse text cannot be decoded at all. In this case the result is
// empty and the parse error is the only error reported.
func (t *Translator) DecodeAll(ciphertext string) (string, []error) {
	s, err := parser.Parse(ciphertext)
	if err != nil {
		return "", []error{err}
	}
	var errs []error
	var b strings.Builder
	for i, w := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		for j, c := range w {
			r, err := t.table.Char(c)
			if err != nil {
				errs = append(errs, &morse.UnknownCodeError{Pos: morse.At(i, j), Code: c})
				r = Unknown
			}
			b.WriteRune(r)
		}
	}
	tracer().Debugf("decoded with %d errors", len(errs))
	return strings.Trim(b.String(), " "), errs
}
