package morse

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol flags a character in Morse text which is neither a
// symbol nor a separator.
// ErrUnknownChar is returned if a plaintext character has no Morse code.
// ErrUnknownCode is returned if a Morse code has no plaintext character.
// ErrDuplicate flags a symbol table entry which would break the uniqueness
// of the table.
//
// Errors returned by this module wrap (or are matched by) one of these
// sentinels, thus clients may check them with errors.Is.
var (
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrUnknownChar   = errors.New("invalid character")
	ErrUnknownCode   = errors.New("invalid morse sequence")
	ErrDuplicate     = errors.New("duplicate entry")
)

// Located is an error which knows where in the input it occurred.
type Located interface {
	error
	Position() Position
}

// PositionOf extracts the position from err, if err is (or wraps) a
// located error.
func PositionOf(err error) (Position, bool) {
	var loc Located
	if errors.As(err, &loc) {
		return loc.Position(), true
	}
	return Position{}, false
}

// ParseError is returned when Morse text contains a character other than
// '.', '-', '/' or whitespace.
type ParseError struct {
	Pos    Position
	Symbol rune // the offending character
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing error: invalid symbol '%c' at position %s", e.Symbol, e.Pos)
}

// Position is part of interface Located.
func (e *ParseError) Position() Position { return e.Pos }

// Is matches ErrInvalidSymbol.
func (e *ParseError) Is(target error) bool { return target == ErrInvalidSymbol }

// UnknownCharError is returned when plaintext contains a character which is
// not part of the symbol table.
type UnknownCharError struct {
	Pos  Position
	Char rune
}

func (e *UnknownCharError) Error() string {
	return fmt.Sprintf("invalid character '%c' at position %s", e.Char, e.Pos)
}

// Position is part of interface Located.
func (e *UnknownCharError) Position() Position { return e.Pos }

// Is matches ErrUnknownChar.
func (e *UnknownCharError) Is(target error) bool { return target == ErrUnknownChar }

// UnknownCodeError is returned when Morse text contains a well-formed code
// which is not part of the symbol table.
type UnknownCodeError struct {
	Pos  Position
	Code CodedChar
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("invalid morse sequence [%s] at position %s", e.Code, e.Pos)
}

// Position is part of interface Located.
func (e *UnknownCodeError) Position() Position { return e.Pos }

// Is matches ErrUnknownCode.
func (e *UnknownCodeError) Is(target error) bool { return target == ErrUnknownCode }

// DuplicateKind tells which half of a symbol table entry is a duplicate.
type DuplicateKind int8

// Kinds of duplicates.
const (
	DuplicatePlain DuplicateKind = iota // plaintext character already present
	DuplicateCode                       // CodedChar already present
)

func (k DuplicateKind) String() string {
	if k == DuplicateCode {
		return "code"
	}
	return "plain"
}

// DuplicateError is returned when building a symbol table from entries
// which repeat a plaintext character or a CodedChar.
type DuplicateError struct {
	Kind  DuplicateKind
	Plain rune
	Code  CodedChar
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate error: failed to add (%c, %s) as it's a duplicate entry",
		e.Plain, e.Code)
}

// Is matches ErrDuplicate.
func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }
