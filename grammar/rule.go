package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTerminalLHS is returned when a rule is constructed with a terminal
// on its left hand side.
var ErrTerminalLHS = errors.New("left hand side of a rule must be a non-terminal")

// Rule is a production of a context-free grammar. Rules are immutable.
//
// An empty right hand side denotes an epsilon production.
type Rule struct {
	lhs Symbol
	rhs []Symbol
	num int
}

// NewRule creates a rule lhs --> rhs… with rule number num.
// It fails with ErrTerminalLHS if lhs is not a non-terminal.
func NewRule(lhs string, rhs []string, num int) (*Rule, error) {
	l := NewSymbol(lhs)
	if l.IsTerminal() {
		return nil, fmt.Errorf("rule %d (%q): %w", num, lhs, ErrTerminalLHS)
	}
	r := &Rule{
		lhs: l,
		rhs: make([]Symbol, len(rhs)),
		num: num,
	}
	for i, name := range rhs {
		r.rhs[i] = NewSymbol(name)
	}
	return r, nil
}

// MustRule is like NewRule, but panics on error. It is intended for
// grammars defined in code.
func MustRule(lhs string, rhs []string, num int) *Rule {
	r, err := NewRule(lhs, rhs, num)
	if err != nil {
		panic(err)
	}
	return r
}

// LHS returns the left hand side non-terminal.
func (r *Rule) LHS() Symbol {
	return r.lhs
}

// RHS returns a copy of the right hand side.
func (r *Rule) RHS() []Symbol {
	rhs := make([]Symbol, len(r.rhs))
	copy(rhs, r.rhs)
	return rhs
}

// Len is the number of symbols on the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// At returns the i-th symbol of the right hand side.
func (r *Rule) At(i int) Symbol {
	return r.rhs[i]
}

// Num is the rule number used as provenance for derived facts.
func (r *Rule) Num() int {
	return r.num
}

// IsEpsilon is true for rules with an empty right hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// String returns the rule as "<A> --> X Y", with "λ" for an empty
// right hand side.
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.lhs.String())
	b.WriteString(" --> ")
	if len(r.rhs) == 0 {
		b.WriteString("λ")
		return b.String()
	}
	for i, sym := range r.rhs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sym.String())
	}
	return b.String()
}
