package ruleio

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/ffsets/grammar"
	"golang.org/x/exp/ebnf"
)

// ReadEBNF reads a grammar in EBNF notation and flattens it into rules.
// If start is not empty, the grammar is verified against production start
// and start's rules are numbered first. filename is used for error messages.
func ReadEBNF(filename string, r io.Reader, start string) ([]*grammar.Rule, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if start != "" {
		if err := ebnf.Verify(g, start); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
	}
	conv := &ebnfConverter{}
	for _, prod := range orderedProductions(g, start) {
		conv.production(prod)
	}
	if conv.err != nil {
		return nil, conv.err
	}
	rl := grammar.NewRuleList()
	for i, fr := range conv.rules {
		if err := rl.Add(fr.lhs, fr.rhs, i+1); err != nil {
			return nil, err
		}
	}
	T().Debugf("flattened %d EBNF productions into %d rules", len(g), rl.Len())
	return rl.Rules(), nil
}

// orderedProductions returns the non-lexical productions in source order,
// with the start production (if any) moved to the front.
func orderedProductions(g ebnf.Grammar, start string) []*ebnf.Production {
	prods := make([]*ebnf.Production, 0, len(g))
	for name, prod := range g {
		if !isLexical(name) {
			prods = append(prods, prod)
		}
	}
	sort.Slice(prods, func(i, j int) bool {
		if prods[i].Name.String == start {
			return prods[j].Name.String != start
		}
		if prods[j].Name.String == start {
			return false
		}
		return prods[i].Name.StringPos.Offset < prods[j].Name.StringPos.Offset
	})
	return prods
}

// isLexical follows the ebnf package: lexical productions start with a
// lower-case letter.
func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

// --- Flattening ------------------------------------------------------------

type flatRule struct {
	lhs string
	rhs []string
}

// helper is a fresh non-terminal standing for a group, option or repetition.
type helper struct {
	name string
	expr ebnf.Expression
}

type ebnfConverter struct {
	rules    []flatRule
	prodName string   // name of the production currently converted
	fresh    int      // counter for helper names
	pending  []helper // helpers to define after the current rule set
	err      error
}

func (c *ebnfConverter) production(prod *ebnf.Production) {
	c.prodName = prod.Name.String
	c.fresh = 0
	lhs := nonterminal(c.prodName)
	for _, rhs := range c.alternatives(prod.Expr) {
		c.rules = append(c.rules, flatRule{lhs: lhs, rhs: rhs})
	}
	for len(c.pending) > 0 {
		h := c.pending[0]
		c.pending = c.pending[1:]
		c.defineHelper(h)
	}
}

func (c *ebnfConverter) defineHelper(h helper) {
	switch x := h.expr.(type) {
	case *ebnf.Option:
		for _, rhs := range c.alternatives(x.Body) {
			c.rules = append(c.rules, flatRule{lhs: h.name, rhs: rhs})
		}
		c.rules = append(c.rules, flatRule{lhs: h.name})
	case *ebnf.Repetition:
		for _, rhs := range c.alternatives(x.Body) {
			c.rules = append(c.rules, flatRule{lhs: h.name, rhs: append(rhs, h.name)})
		}
		c.rules = append(c.rules, flatRule{lhs: h.name})
	case *ebnf.Group:
		for _, rhs := range c.alternatives(x.Body) {
			c.rules = append(c.rules, flatRule{lhs: h.name, rhs: rhs})
		}
	default: // nested alternative or sequence
		for _, rhs := range c.alternatives(x) {
			c.rules = append(c.rules, flatRule{lhs: h.name, rhs: rhs})
		}
	}
}

func (c *ebnfConverter) alternatives(expr ebnf.Expression) [][]string {
	if alt, ok := expr.(ebnf.Alternative); ok {
		rhss := make([][]string, 0, len(alt))
		for _, x := range alt {
			rhss = append(rhss, c.sequence(x))
		}
		return rhss
	}
	return [][]string{c.sequence(expr)}
}

func (c *ebnfConverter) sequence(expr ebnf.Expression) []string {
	if expr == nil {
		return []string{}
	}
	if seq, ok := expr.(ebnf.Sequence); ok {
		rhs := make([]string, 0, len(seq))
		for _, x := range seq {
			rhs = append(rhs, c.symbol(x))
		}
		return rhs
	}
	return []string{c.symbol(expr)}
}

func (c *ebnfConverter) symbol(expr ebnf.Expression) string {
	switch x := expr.(type) {
	case *ebnf.Name:
		if isLexical(x.String) {
			return x.String
		}
		return nonterminal(x.String)
	case *ebnf.Token:
		return strconv.Quote(x.String)
	case *ebnf.Range:
		return strconv.Quote(x.Begin.String) + "…" + strconv.Quote(x.End.String)
	case *ebnf.Bad:
		if c.err == nil {
			c.err = fmt.Errorf("%w: %s: %s", ErrSyntax, x.TokPos, x.Error)
		}
		return ""
	}
	c.fresh++
	name := nonterminal(c.prodName + "." + strconv.Itoa(c.fresh))
	c.pending = append(c.pending, helper{name: name, expr: expr})
	return name
}

func nonterminal(name string) string {
	return string(grammar.NonTerminalMarker) + name + ">"
}
