package ruleio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/ffsets/grammar"
)

// ErrSyntax flags malformed input.
// ErrUnknownFormat is returned for files with an unsupported extension.
var (
	ErrSyntax        = errors.New("syntax error in grammar input")
	ErrUnknownFormat = errors.New("unknown grammar file format")
)

// Format is an input format.
type Format int8

// Supported input formats
const (
	Unknown Format = iota
	Text
	JSON
	EBNF
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case EBNF:
		return "ebnf"
	}
	return "unknown"
}

// FormatOf derives the input format from a file name's extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return Text
	case ".json":
		return JSON
	case ".ebnf":
		return EBNF
	}
	return Unknown
}

type loader struct {
	start string
}

// Option configures loading.
type Option func(*loader)

// WithStart names the start production of an EBNF grammar. The grammar is
// verified against it, and the start production's rules come first.
// Ignored for other formats.
func WithStart(name string) Option {
	return func(l *loader) {
		l.start = name
	}
}

// Load reads the rules from file path, choosing the reader by the file's
// extension.
func Load(path string, opts ...Option) ([]*grammar.Rule, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}
	format := FormatOf(path)
	if format == Unknown {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var rules []*grammar.Rule
	switch format {
	case Text:
		rules, err = ReadText(f)
	case JSON:
		rules, err = ReadJSON(f)
	case EBNF:
		rules, err = ReadEBNF(path, f, l.start)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	T().Infof("loaded %d rules from %s (%s)", len(rules), path, format)
	return rules, nil
}
