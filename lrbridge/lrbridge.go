/*
Package lrbridge hands grammars over to the LR toolbox gorgo.

Rules are translated one by one into gorgo grammar rules. Non-terminals keep
their names, terminals are assigned token values in order of first
appearance. Epsilon symbols on a right hand side are dropped; a rule left
without any symbols becomes an epsilon rule. The left hand side of the first
rule is the start symbol.

gorgo performs its own, text-book grammar analysis. Its results may differ
from package ffsets for grammars with epsilon rules.
*/
package lrbridge

import (
	"errors"

	"github.com/npillmayer/ffsets/grammar"
	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrEmptyGrammar is returned when exporting an empty rule list.
var ErrEmptyGrammar = errors.New("cannot export a grammar without rules")

// Tokens maps terminal names to gorgo token values.
type Tokens struct {
	values map[string]int
	names  []string
}

func newTokens() *Tokens {
	return &Tokens{values: make(map[string]int)}
}

// value returns the token value of terminal name, assigning the next free
// value on first use. Token values start at 1.
func (tt *Tokens) value(name string) int {
	if v, ok := tt.values[name]; ok {
		return v
	}
	tt.names = append(tt.names, name)
	tt.values[name] = len(tt.names)
	return len(tt.names)
}

// Value returns the token value of a terminal.
func (tt *Tokens) Value(name string) (int, bool) {
	v, ok := tt.values[name]
	return v, ok
}

// Names returns all terminals, ordered by token value.
func (tt *Tokens) Names() []string {
	return append([]string{}, tt.names...)
}

// Export builds a gorgo grammar named name from rules and runs gorgo's
// LR analysis on it. It returns the analysis and the token values assigned
// to terminals.
func Export(name string, rules []*grammar.Rule) (*lr.LRAnalysis, *Tokens, error) {
	if len(rules) == 0 {
		return nil, nil, ErrEmptyGrammar
	}
	b := lr.NewGrammarBuilder(name)
	tokens := newTokens()
	for _, r := range rules {
		rb := b.LHS(r.LHS().Name)
		n := 0
		for i := 0; i < r.Len(); i++ {
			sym := r.At(i)
			switch {
			case sym.IsEpsilon():
				continue
			case sym.IsTerminal():
				rb = rb.T(sym.Name, tokens.value(sym.Name))
			default:
				rb = rb.N(sym.Name)
			}
			n++
		}
		if n == 0 {
			rb.Epsilon()
		} else {
			rb.End()
		}
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, nil, err
	}
	T().Debugf("exported %d rules with %d terminals to gorgo grammar %q", len(rules), len(tokens.names), name)
	return lr.Analysis(g), tokens, nil
}
