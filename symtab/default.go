package symtab

import (
	"sync"

	"github.com/npillmayer/morse"
)

// isoEntries is the table of ITU-R M.1677-1, plus some accented letters in
// common use. Letters are lowercase; encoders are expected to lowercase
// their input.
var isoEntries = [...]struct {
	plain rune
	code  string
	alias bool
}{
	// Latin letters
	{'a', ".-", false}, {'b', "-...", false}, {'c', "-.-.", false},
	{'d', "-..", false}, {'e', ".", false}, {'f', "..-.", false},
	{'g', "--.", false}, {'h', "....", false}, {'i', "..", false},
	{'j', ".---", false}, {'k', "-.-", false}, {'l', ".-..", false},
	{'m', "--", false}, {'n', "-.", false}, {'o', "---", false},
	{'p', ".--.", false}, {'q', "--.-", false}, {'r', ".-.", false},
	{'s', "...", false}, {'t', "-", false}, {'u', "..-", false},
	{'v', "...-", false}, {'w', ".--", false}, {'x', "-..-", false},
	{'y', "-.--", false}, {'z', "--..", false},
	// accented letters
	{'ü', "..--", false}, {'ä', ".-.-", false}, {'ö', "---.", false},
	{'é', "..-..", false}, {'è', ".-..-", false}, {'à', ".--.-", false},
	{'ñ', "--.--", false},
	// digits
	{'0', "-----", false}, {'1', ".----", false}, {'2', "..---", false},
	{'3', "...--", false}, {'4', "....-", false}, {'5', ".....", false},
	{'6', "-....", false}, {'7', "--...", false}, {'8', "---..", false},
	{'9', "----.", false},
	// punctuation
	{'+', ".-.-.", false}, {'=', "-...-", false}, {'/', "-..-.", false},
	{'?', "..--..", false}, {'_', "..--.-", false}, {'"', ".-..-.", false},
	{'.', ".-.-.-", false}, {'@', ".--.-.", false}, {'\'', ".----.", false},
	{'-', "-....-", false}, {';', "-.-.-.", false}, {'!', "-.-.--", false},
	{'(', "-.--.-", false}, {')', "-.--.-", true},
	{',', "--..--", false}, {':', "---...", false},
}

// DefaultPairs returns the entries of the default ISO table.
func DefaultPairs() []Pair {
	pairs := make([]Pair, len(isoEntries))
	for i, e := range isoEntries {
		pairs[i] = Pair{Plain: e.plain, Code: morse.MustCodedChar(e.code), Alias: e.alias}
	}
	return pairs
}

// NewDefault builds a fresh copy of the default ISO table.
func NewDefault() (*Table, error) {
	return Build(DefaultPairs())
}

var defaultTable struct {
	once  sync.Once
	table *Table
}

// Default returns the default ISO table. It is built on first use and
// shared afterwards.
func Default() *Table {
	defaultTable.once.Do(func() {
		t, err := NewDefault()
		if err != nil {
			panic("symtab: default table is inconsistent: " + err.Error())
		}
		defaultTable.table = t
	})
	return defaultTable.table
}
