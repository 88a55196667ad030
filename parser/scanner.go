package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/gorgo/lr/scanner"
)

// Token values returned by Scanner.NextToken.
const (
	CodeTok    = 1 // a run of characters which are neither whitespace nor '/'
	WordSepTok = 2 // the word separator '/'
)

// TokenString returns a readable name for a token value.
func TokenString(tokval int) string {
	switch tokval {
	case CodeTok:
		return "Code"
	case WordSepTok:
		return "WordSep"
	case scanner.EOF:
		return "EOF"
	}
	return fmt.Sprintf("Token(%d)", tokval)
}

// Scanner implements the scanner.Tokenizer interface for Morse text.
// Whitespace is skipped and never produces a token.
type Scanner struct {
	input   string      // text to scan
	pos     int         // position in input string
	onError func(error) // receives notices about malformed input
}

var _ scanner.Tokenizer = (*Scanner)(nil)

// NewScanner creates a scanner for a Morse text.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// NextToken returns the next code or word separator.
//
// The token's value is either CodeTok or WordSepTok, the token itself is
// the lexeme as a string. Start position and length are byte offsets into
// the input. At the end of input, scanner.EOF is returned. Argument expected
// is ignored, as Morse text is not ambiguous.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	for sc.pos < len(sc.input) && isSpace(sc.input[sc.pos]) {
		sc.pos++
	}
	if sc.pos >= len(sc.input) {
		return scanner.EOF, "", uint64(sc.pos), 0
	}
	start := sc.pos
	if sc.input[start] == '/' {
		sc.pos++
		return WordSepTok, "/", uint64(start), 1
	}
	for sc.pos < len(sc.input) {
		b := sc.input[sc.pos]
		if isSpace(b) || b == '/' {
			break
		}
		if b < utf8.RuneSelf {
			sc.pos++
			continue
		}
		r, sz := utf8.DecodeRuneInString(sc.input[sc.pos:])
		if r == utf8.RuneError && sz == 1 {
			sc.error(fmt.Errorf("malformed UTF-8 at byte offset %d", sc.pos))
		}
		sc.pos += sz
	}
	lexeme := sc.input[start:sc.pos]
	tracer().Debugf("scanned token '%s' as :%s", lexeme, TokenString(CodeTok))
	return CodeTok, lexeme, uint64(start), uint64(len(lexeme))
}

// SetErrorHandler sets an error handler function, which receives notices
// about malformed UTF-8 input. The scanner continues after calling it.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.onError = h
}

func (sc *Scanner) error(err error) {
	if sc.onError != nil {
		sc.onError(err)
		return
	}
	tracer().Errorf("%v", err)
}

// isSpace is true for ASCII whitespace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
