package codec

import (
	"sync"

	"github.com/npillmayer/morse/symtab"
)

// Encoder translates plaintext to Morse text.
type Encoder interface {
	Encode(plaintext string) (string, error)
}

// Decoder translates Morse text to plaintext.
type Decoder interface {
	Decode(ciphertext string) (string, error)
}

// Translator encodes and decodes Morse code using a symbol table.
// A Translator is immutable and may be used from multiple goroutines.
type Translator struct {
	table     *symtab.Table
	casing    *Casing
	normalize bool // compose to NFC before lookup
}

var _ Encoder = (*Translator)(nil)
var _ Decoder = (*Translator)(nil)

// Option configures a Translator.
type Option func(*Translator)

// WithCasing sets the lowercasing rules applied to plaintext. The
// Translator keeps a copy of c.
func WithCasing(c *Casing) Option {
	return func(t *Translator) {
		if c != nil {
			cc := *c
			t.casing = &cc
		}
	}
}

// WithNormalization composes plaintext to Unicode normalization form NFC
// before lookup, so that decomposed characters, e.g. 'e' followed by U+0301,
// encode like their precomposed form. Character positions in errors then
// refer to the composed text.
func WithNormalization() Option {
	return func(t *Translator) {
		t.normalize = true
	}
}

// New creates a Translator for a symbol table. If table is nil, the default
// ISO table is used.
func New(table *symtab.Table, opts ...Option) *Translator {
	if table == nil {
		table = symtab.Default()
	}
	t := &Translator{
		table:     table,
		casing:    DefaultCasing(),
		normalize: false,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Table returns the symbol table t operates on.
func (t *Translator) Table() *symtab.Table {
	return t.table
}

var defaultTranslator struct {
	once sync.Once
	tr   *Translator
}

// Default returns a Translator for the default ISO symbol table.
func Default() *Translator {
	defaultTranslator.once.Do(func() {
		defaultTranslator.tr = New(symtab.Default())
	})
	return defaultTranslator.tr
}

// Encode translates plaintext to Morse text using the default table.
func Encode(plaintext string) (string, error) {
	return Default().Encode(plaintext)
}

// Decode translates Morse text to plaintext using the default table.
func Decode(ciphertext string) (string, error) {
	return Default().Decode(ciphertext)
}
