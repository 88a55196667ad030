package parser

import (
	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/morse"
)

// Parse reads a Morse text into a Sentence. The resulting sentence always
// has at least one word, which may be empty.
//
// Parse fails with a *morse.ParseError at the first character that is not
// a Morse symbol.
func Parse(input string) (morse.Sentence, error) {
	sc := NewScanner(input)
	sc.SetErrorHandler(func(err error) {
		tracer().Infof("parser: %v", err)
	})
	sentence := morse.Sentence{morse.Word{}}
	for {
		tokval, token, _, _ := sc.NextToken(scanner.AnyToken)
		switch tokval {
		case scanner.EOF:
			tracer().Debugf("parsed %d words", len(sentence))
			return sentence, nil
		case WordSepTok:
			sentence = append(sentence, morse.Word{})
		case CodeTok:
			i := len(sentence) - 1
			pos := morse.At(i, len(sentence[i]))
			c, err := parseCode(token.(string), pos)
			if err != nil {
				tracer().Errorf("%v", err)
				return nil, err
			}
			sentence[i] = append(sentence[i], c)
		}
	}
}

func parseCode(lexeme string, pos morse.Position) (morse.CodedChar, error) {
	c := make(morse.CodedChar, 0, len(lexeme))
	for _, r := range lexeme {
		sym, ok := morse.SymbolFor(r)
		if !ok {
			return nil, &morse.ParseError{Pos: pos, Symbol: r}
		}
		c = append(c, sym)
	}
	return c, nil
}
