package codec

import (
	"strings"

	"github.com/npillmayer/morse"
	"github.com/npillmayer/morse/parser"
)

// Decode translates Morse text to plaintext. Parse errors are returned
// unchanged; otherwise decoding stops at the first code not contained in
// the symbol table, returning a *morse.UnknownCodeError.
// Words are separated by a single space in the result, and leading or
// trailing spaces are removed.
func (t *Translator) Decode(ciphertext string) (string, error) {
	s, err := parser.Parse(ciphertext)
	if err != nil {
		return "", err
	}
	return t.DecodeSentence(s)
}

// DecodeSentence decodes an already parsed Morse sentence.
func (t *Translator) DecodeSentence(s morse.Sentence) (string, error) {
	var b strings.Builder
	for i, w := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		for j, c := range w {
			r, err := t.table.Char(c)
			if err != nil {
				uerr := &morse.UnknownCodeError{Pos: morse.At(i, j), Code: c}
				tracer().Infof("%v", uerr)
				return "", uerr
			}
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), " "), nil
}
