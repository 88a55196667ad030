package symtab

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/hashbidimap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/morse"
)

// ErrUnknown is returned for lookups of characters or codes which are not
// part of a table.
// ErrEmptyCode flags an entry without any symbols.
// ErrDanglingAlias flags an alias for a code without canonical entry.
var (
	ErrUnknown       = errors.New("symbol table: unknown entry")
	ErrEmptyCode     = errors.New("symbol table: empty code")
	ErrDanglingAlias = errors.New("symbol table: alias without canonical entry")
)

// Pair is an entry of a symbol table. If Alias is set, Plain will encode to
// Code, but decoding Code will result in the plaintext character of the
// canonical entry for Code.
type Pair struct {
	Plain rune
	Code  morse.CodedChar
	Alias bool
}

func (p Pair) String() string {
	if p.Alias {
		return fmt.Sprintf("(%c, %s, alias)", p.Plain, p.Code)
	}
	return fmt.Sprintf("(%c, %s)", p.Plain, p.Code)
}

// Table is an immutable symbol table. Lookups in both directions are O(1).
type Table struct {
	canonical *hashbidimap.Map // rune ↔ rendered code, 1:1
	aliases   map[rune]string  // encode-only entries
	pairs     *arraylist.List  // all pairs in insertion order
}

// Build creates a symbol table from a list of pairs. All pairs are checked
// before the table is populated; if any check fails, no table is returned.
// Possible errors are a *morse.DuplicateError, ErrEmptyCode and ErrDanglingAlias.
func Build(pairs []Pair) (*Table, error) {
	if err := validate(pairs); err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	t := &Table{
		canonical: hashbidimap.New(),
		aliases:   make(map[rune]string),
		pairs:     arraylist.New(),
	}
	for _, p := range pairs {
		key := p.Code.Key()
		if p.Alias {
			t.aliases[p.Plain] = key
		} else {
			t.canonical.Put(p.Plain, key)
		}
		t.pairs.Add(Pair{Plain: p.Plain, Code: clone(p.Code), Alias: p.Alias})
	}
	tracer().Debugf("symbol table built with %d entries, %d aliases", t.canonical.Size(), len(t.aliases))
	return t, nil
}

func validate(pairs []Pair) error {
	plains := hashset.New()
	codes := hashset.New()
	for _, p := range pairs {
		if len(p.Code) == 0 {
			return fmt.Errorf("%w for '%c'", ErrEmptyCode, p.Plain)
		}
		if plains.Contains(p.Plain) {
			return &morse.DuplicateError{Kind: morse.DuplicatePlain, Plain: p.Plain, Code: p.Code}
		}
		plains.Add(p.Plain)
		if p.Alias {
			continue
		}
		key := p.Code.Key()
		if codes.Contains(key) {
			return &morse.DuplicateError{Kind: morse.DuplicateCode, Plain: p.Plain, Code: p.Code}
		}
		codes.Add(key)
	}
	for _, p := range pairs {
		if p.Alias && !codes.Contains(p.Code.Key()) {
			return fmt.Errorf("%w: (%c, %s)", ErrDanglingAlias, p.Plain, p.Code)
		}
	}
	return nil
}

// Code returns the CodedChar for a plaintext character. Characters not
// contained in the table result in an error wrapping ErrUnknown.
func (t *Table) Code(r rune) (morse.CodedChar, error) {
	if key, found := t.canonical.Get(r); found {
		return morse.MustCodedChar(key.(string)), nil
	}
	if key, found := t.aliases[r]; found {
		return morse.MustCodedChar(key), nil
	}
	return nil, fmt.Errorf("%w: character '%c'", ErrUnknown, r)
}

// Char returns the plaintext character for a CodedChar. For codes shared
// with aliases, the canonical character is returned. Codes not contained in
// the table result in an error wrapping ErrUnknown.
func (t *Table) Char(c morse.CodedChar) (rune, error) {
	if r, found := t.canonical.GetKey(c.Key()); found {
		return r.(rune), nil
	}
	return 0, fmt.Errorf("%w: code [%s]", ErrUnknown, c)
}

// Contains returns true if r is a plaintext character of t, canonical or alias.
func (t *Table) Contains(r rune) bool {
	if _, found := t.canonical.Get(r); found {
		return true
	}
	_, found := t.aliases[r]
	return found
}

// Len returns the number of pairs in the table, including aliases.
func (t *Table) Len() int {
	return t.pairs.Size()
}

// Pairs returns all entries of t in the order they have been added.
// Clients are free to modify the returned slice.
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, 0, t.pairs.Size())
	t.pairs.Each(func(_ int, value interface{}) {
		p := value.(Pair)
		pairs = append(pairs, Pair{Plain: p.Plain, Code: clone(p.Code), Alias: p.Alias})
	})
	return pairs
}

func clone(c morse.CodedChar) morse.CodedChar {
	cc := make(morse.CodedChar, len(c))
	copy(cc, c)
	return cc
}
