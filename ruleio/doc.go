/*
Package ruleio reads grammar rules from files.

Three input formats are supported, selected by file extension:

■ .txt: one rule per line, in the form

    NUM <LHS> -> SYM SYM …

where NUM is the rule number. An empty right hand side denotes an epsilon
rule. Blank lines and lines starting with '#' are skipped. Instead of "->"
the arrows "-->", "→" and "::=" are accepted.

■ .json: an array of rule objects

    [ { "lhs": "<S>", "rhs": [ "<A>", "b" ], "number": 1 }, … ]

■ .ebnf: a grammar in the EBNF dialect of golang.org/x/exp/ebnf. Productions
with a capitalized name become non-terminals "<Name>"; lexical productions
(lower-case names) and tokens become terminals. Groups, options and
repetitions are replaced by fresh non-terminals "<Name.n>", which get rules
of their own. Rules are numbered consecutively from 1.
*/
package ruleio

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
