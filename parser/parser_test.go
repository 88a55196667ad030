package parser

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/morse"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestScanner(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	sc := NewScanner("  .- -.../\t--  ")
	expected := []struct {
		tokval int
		lexeme string
		pos    uint64
	}{
		{CodeTok, ".-", 2}, {CodeTok, "-...", 5}, {WordSepTok, "/", 9},
		{CodeTok, "--", 11}, {scanner.EOF, "", 15},
	}
	for i, exp := range expected {
		tokval, token, pos, _ := sc.NextToken(scanner.AnyToken)
		t.Logf("token #%d = %s '%v' at %d", i, TokenString(tokval), token, pos)
		if tokval != exp.tokval || token.(string) != exp.lexeme || pos != exp.pos {
			t.Errorf("expected token #%d to be %s '%s' at %d, is %s '%v' at %d", i,
				TokenString(exp.tokval), exp.lexeme, exp.pos, TokenString(tokval), token, pos)
		}
	}
}

func TestScannerMalformedUTF8(t *testing.T) {
	sc := NewScanner(".\xff-")
	var notices []error
	sc.SetErrorHandler(func(err error) {
		notices = append(notices, err)
	})
	tokval, token, _, length := sc.NextToken(scanner.AnyToken)
	if tokval != CodeTok || length != 3 {
		t.Errorf("expected a single code token of length 3, have %s '%v'", TokenString(tokval), token)
	}
	if len(notices) != 1 {
		t.Errorf("expected 1 notice about malformed input, have %d", len(notices))
	}
}

func TestParse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	var tests = []struct {
		input string
		words []int // number of codes per word
	}{
		{"", []int{0}},
		{"   \t ", []int{0}},
		{" / ", []int{0, 0}},
		{"/", []int{0, 0}},
		{"... --- ...", []int{3}},
		{"   ...    ---   ...   ", []int{3}},
		{"- . ... - / ... --- -- . / .-- --- .-. -.. ...", []int{4, 4, 5}},
		{"..-/--", []int{1, 1}},
		{"... /  / ...", []int{1, 0, 1}},
		{"........", []int{1}},
	}
	for _, test := range tests {
		s, err := Parse(test.input)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", test.input, err)
			continue
		}
		if len(s) != len(test.words) {
			t.Errorf("expected %q to have %d words, has %d", test.input, len(test.words), len(s))
			continue
		}
		for i, n := range test.words {
			if len(s[i]) != n {
				t.Errorf("expected word #%d of %q to have %d codes, has %d", i, test.input, n, len(s[i]))
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	var tests = []struct {
		input   string
		message string
		pos     morse.Position
	}{
		{".a. --- ...", "parsing error: invalid symbol 'a' at position (word 1, char 1)", morse.At(0, 0)},
		{"... --- / ... _", "parsing error: invalid symbol '_' at position (word 2, char 2)", morse.At(1, 1)},
		{"... / / .-ü", "parsing error: invalid symbol 'ü' at position (word 3, char 1)", morse.At(2, 0)},
		{"...\u00a0---", "parsing error: invalid symbol '\u00a0' at position (word 1, char 1)", morse.At(0, 0)},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		if err == nil {
			t.Errorf("expected %q to fail", test.input)
			continue
		}
		if err.Error() != test.message {
			t.Errorf("expected error %q, is %q", test.message, err.Error())
		}
		var perr *morse.ParseError
		if !errors.As(err, &perr) || perr.Pos != test.pos {
			t.Errorf("expected parse error at %v, have %v", test.pos, err)
		}
	}
}

func TestParseFirstErrorWins(t *testing.T) {
	_, err := Parse(".x. / ..y")
	if p, _ := morse.PositionOf(err); p != morse.At(0, 0) {
		t.Errorf("expected first error to be reported at (0,0), is %v", p)
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(1677))
	for n := 0; n < 200; n++ {
		s := make(morse.Sentence, 1+rnd.Intn(5))
		for i := range s {
			s[i] = make(morse.Word, rnd.Intn(6))
			for j := range s[i] {
				c := make(morse.CodedChar, 1+rnd.Intn(7))
				for k := range c {
					c[k] = morse.Symbol(rnd.Intn(2))
				}
				s[i][j] = c
			}
		}
		rendered := s.String()
		parsed, err := Parse(rendered)
		if err != nil {
			t.Fatalf("cannot parse rendered sentence %q: %v", rendered, err)
		}
		if !parsed.Equal(s) {
			t.Fatalf("round trip failed: %q parsed as %q", rendered, parsed.String())
		}
	}
}
