/*
Package ffsets computes First and Follow sets for the non-terminals of a
context-free grammar.

Description

First and Follow sets are the foundation of predictive (LL) parsing. For a
non-terminal N,

    First(N)   is the set of terminals which may begin a string derived from N,
    Follow(N)  is the set of terminals which may immediately follow N.

Every fact is recorded together with a justification: the number of the rule
which caused the terminal to be inserted. The first justification for a
terminal wins and is never overwritten.

Contents

Grammar symbols and rules live in sub-package grammar, set storage in
sub-package sets. Package ffsets itself provides the Solver, which drives a
fixed-point iteration over the rules of a grammar. Sub-package ruleio reads
grammars from text, JSON and EBNF files, sub-package report prints rules and
sets, and sub-package lrbridge hands a grammar over to the gorgo LR toolbox.

The Algorithm

Each rule is classified by six structural forms (see package grammar). A
single iteration applies the forms in the order

    A, B, D, E, F, C

where every form is applied to the complete list of rules (in rule order)
before the next form starts. Within a rule, pairs of adjacent symbols are
visited left to right, and facts flowing from one set into another are
visited in the source set's insertion order. This order is fixed, because
the justification recorded for a fact depends on which rule inserts it
first. Set membership at the fixed point does not depend on it.

An iteration reports a change if any single insertion succeeded. The Solver
iterates until an iteration completes without a change. As sets only grow
and there are at most 2·|T|·|N| facts, this happens after a bounded number of
iterations.

Please note that an epsilon rule <A> --> (empty) makes Follow(<A>) flow into
First(<A>). This differs from the text-book treatment of nullable
non-terminals and is intentional; clients relying on text-book First sets
should not use epsilon rules.

Example

    rules := []*grammar.Rule{
        grammar.MustRule("<S>", []string{"<A>", "b"}, 1),
        grammar.MustRule("<A>", []string{"a"}, 2),
        grammar.MustRule("<A>", nil, 3),
    }
    result, err := ffsets.NewSolver(rules).Solve()

results in

    First(<A>)  = { a (2), b (3) }     Follow(<A>) = { b (1) }
    First(<S>)  = { a (1), b (1) }     Follow(<S>) = {}

BSD License

Copyright (c) 2023, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package ffsets

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
