package symtab

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/morse"
)

// Builder collects pairs for a symbol table. Checks are deferred until
// Build is called.
type Builder struct {
	pairs *arraylist.List
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{pairs: arraylist.New()}
}

// NewBuilderFrom creates a builder pre-filled with all pairs of table t.
func NewBuilderFrom(t *Table) *Builder {
	b := NewBuilder()
	for _, p := range t.Pairs() {
		b.pairs.Add(p)
	}
	return b
}

// Add appends a canonical entry.
func (b *Builder) Add(plain rune, code morse.CodedChar) *Builder {
	b.pairs.Add(Pair{Plain: plain, Code: code})
	return b
}

// Alias appends an encode-only entry. code has to be the code of a
// canonical entry of the same table.
func (b *Builder) Alias(plain rune, code morse.CodedChar) *Builder {
	b.pairs.Add(Pair{Plain: plain, Code: code, Alias: true})
	return b
}

// Len returns the number of pairs collected so far.
func (b *Builder) Len() int {
	return b.pairs.Size()
}

// Build creates the table (see function Build).
func (b *Builder) Build() (*Table, error) {
	pairs := make([]Pair, 0, b.pairs.Size())
	for _, v := range b.pairs.Values() {
		pairs = append(pairs, v.(Pair))
	}
	return Build(pairs)
}
