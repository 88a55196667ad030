package symtab

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/morse"
	"gopkg.in/yaml.v3"
)

// ErrFormat is returned for table files with an unsupported extension.
// ErrInvalidEntry flags malformed entries of a table file.
var (
	ErrFormat       = errors.New("symbol table: unsupported file format")
	ErrInvalidEntry = errors.New("symbol table: invalid entry")
)

// BaseDefault as the base of a table file extends the default ISO table.
const BaseDefault = "default"

// tableFile is the layout of a symbol table file.
type tableFile struct {
	Name    string        `toml:"name" yaml:"name"`
	Base    string        `toml:"base" yaml:"base"`
	Entries []entryRecord `toml:"entry" yaml:"entry"`
}

type entryRecord struct {
	Plain string `toml:"plain" yaml:"plain"`
	Code  string `toml:"code" yaml:"code"`
	Alias bool   `toml:"alias" yaml:"alias"`
}

// Load reads a symbol table from a file. The format is derived from the
// file extension: ".toml" for TOML, ".yaml" or ".yml" for YAML.
func Load(path string) (*Table, error) {
	var load func(io.Reader) (*Table, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		load = LoadTOML
	case ".yaml", ".yml":
		load = LoadYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tracer().Infof("loading symbol table from %s", path)
	return load(f)
}

// LoadTOML reads a symbol table in TOML format.
func LoadTOML(r io.Reader) (*Table, error) {
	var tf tableFile
	if _, err := toml.NewDecoder(r).Decode(&tf); err != nil {
		return nil, fmt.Errorf("symbol table: cannot decode TOML: %w", err)
	}
	return tf.build()
}

// LoadYAML reads a symbol table in YAML format.
func LoadYAML(r io.Reader) (*Table, error) {
	var tf tableFile
	if err := yaml.NewDecoder(r).Decode(&tf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("symbol table: cannot decode YAML: %w", err)
	}
	return tf.build()
}

func (tf *tableFile) build() (*Table, error) {
	var pairs []Pair
	switch tf.Base {
	case "":
	case BaseDefault:
		pairs = DefaultPairs()
	default:
		return nil, fmt.Errorf("%w: unknown base table %q", ErrInvalidEntry, tf.Base)
	}
	for i, e := range tf.Entries {
		if utf8.RuneCountInString(e.Plain) != 1 {
			return nil, fmt.Errorf("%w #%d: plain %q is not a single character",
				ErrInvalidEntry, i+1, e.Plain)
		}
		plain, _ := utf8.DecodeRuneInString(e.Plain)
		code, err := morse.CodedCharFromString(e.Code)
		if err != nil {
			return nil, fmt.Errorf("%w #%d: %v", ErrInvalidEntry, i+1, err)
		}
		pairs = append(pairs, Pair{Plain: plain, Code: code, Alias: e.Alias})
	}
	tracer().Debugf("table file %q has %d entries", tf.Name, len(tf.Entries))
	return Build(pairs)
}
