package morse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestSymbolRendering(t *testing.T) {
	if Dot.String() != "." {
		t.Errorf("expected Dot to render as '.', is %q", Dot.String())
	}
	if Dash.String() != "-" {
		t.Errorf("expected Dash to render as '-', is %q", Dash.String())
	}
	if _, ok := SymbolFor('a'); ok {
		t.Errorf("expected 'a' not to be a Morse symbol")
	}
}

func TestCodedCharFromString(t *testing.T) {
	c, err := CodedCharFromString("-.-.")
	if err != nil {
		t.Fatal(err)
	}
	if !c.Equal(CodedChar{Dash, Dot, Dash, Dot}) {
		t.Errorf("expected -.-. to be [Dash Dot Dash Dot], is %v", []Symbol(c))
	}
	if c.String() != "-.-." {
		t.Errorf("expected CodedChar to render as -.-., is %q", c.String())
	}
	_, err = CodedCharFromString(".x")
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol for '.x', have %v", err)
	}
}

func TestRenderingEmpty(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if s := (Word{}).String(); s != "" {
		t.Errorf("expected empty word to render as empty string, is %q", s)
	}
	if s := (Sentence{}).String(); s != "" {
		t.Errorf("expected empty sentence to render as empty string, is %q", s)
	}
	if s := (Sentence{Word{}}).String(); s != "" {
		t.Errorf("expected sentence of an empty word to render as empty string, is %q", s)
	}
	if s := (Sentence{Word{}, Word{}}).String(); s != " / " {
		t.Errorf("expected two empty words to render as ' / ', is %q", s)
	}
}

func TestRenderingSentence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sos := Word{MustCodedChar("..."), MustCodedChar("---"), MustCodedChar("...")}
	if sos.String() != "... --- ..." {
		t.Errorf("expected word to render as '... --- ...', is %q", sos.String())
	}
	s := Sentence{
		{MustCodedChar("-"), MustCodedChar("."), MustCodedChar("..."), MustCodedChar("-")},
		{MustCodedChar("..."), MustCodedChar("---"), MustCodedChar("--"), MustCodedChar(".")},
	}
	if s.String() != "- . ... - / ... --- -- ." {
		t.Errorf("unexpected rendering of sentence: %q", s.String())
	}
	if s.CharCount() != 8 {
		t.Errorf("expected sentence to have 8 coded chars, has %d", s.CharCount())
	}
	for i := 0; i < 100; i++ { // buffers are re-used from the pool
		if s.String() != "- . ... - / ... --- -- ." {
			t.Fatalf("rendering changed after %d iterations: %q", i, s.String())
		}
	}
}

func TestSentenceEquality(t *testing.T) {
	a := Sentence{{MustCodedChar(".-")}, {}}
	b := Sentence{{MustCodedChar(".-")}, {}}
	c := Sentence{{MustCodedChar(".-")}}
	if !a.Equal(b) {
		t.Errorf("expected %v to equal %v", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %q not to equal %q", a, c)
	}
}

func TestPosition(t *testing.T) {
	p := At(1, 1)
	if p.String() != "(word 2, char 2)" {
		t.Errorf("expected position to render 1-based, is %q", p.String())
	}
}

func TestErrorMessages(t *testing.T) {
	var tests = []struct {
		err      error
		message  string
		sentinel error
	}{
		{&ParseError{Pos: At(0, 0), Symbol: 'a'},
			"parsing error: invalid symbol 'a' at position (word 1, char 1)", ErrInvalidSymbol},
		{&UnknownCharError{Pos: At(1, 1), Char: '^'},
			"invalid character '^' at position (word 2, char 2)", ErrUnknownChar},
		{&UnknownCodeError{Pos: At(0, 0), Code: MustCodedChar("..........")},
			"invalid morse sequence [..........] at position (word 1, char 1)", ErrUnknownCode},
		{&DuplicateError{Kind: DuplicateCode, Plain: 'x', Code: MustCodedChar(".-")},
			"duplicate error: failed to add (x, .-) as it's a duplicate entry", ErrDuplicate},
	}
	for i, test := range tests {
		if test.err.Error() != test.message {
			t.Errorf("test #%d: expected %q, is %q", i, test.message, test.err.Error())
		}
		if !errors.Is(fmt.Errorf("wrapped: %w", test.err), test.sentinel) {
			t.Errorf("test #%d: expected error to match sentinel %v", i, test.sentinel)
		}
	}
}

func TestPositionOf(t *testing.T) {
	err := fmt.Errorf("decoding: %w", &UnknownCodeError{Pos: At(2, 3), Code: MustCodedChar("-")})
	p, ok := PositionOf(err)
	if !ok || p != At(2, 3) {
		t.Errorf("expected position (2,3) to be extracted, have %v/%v", p, ok)
	}
	if _, ok := PositionOf(&DuplicateError{}); ok {
		t.Errorf("duplicate errors should not carry a position")
	}
}

func ExampleSentence() {
	s := Sentence{
		{MustCodedChar("..."), MustCodedChar("---"), MustCodedChar("...")},
		{MustCodedChar(".-")},
	}
	fmt.Println(s)
	// Output:
	// ... --- ... / .-
}
