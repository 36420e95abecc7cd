/*
Package grammar holds the building blocks of a context-free grammar: symbols
and production rules.

Symbols

The distinction between terminals and non-terminals is purely syntactic.
A symbol is a non-terminal if its name starts with the marker character '<',
as in "<Expr>". Every other name is a terminal, including the empty name,
which stands for the empty string (epsilon, printed as "lambda").

Rules

A rule is an immutable production

    <A> --> X1 X2 … Xn

carrying a caller-supplied rule number. The rule number is used purely for
provenance: it is recorded as the justification of every First/Follow fact
derived from the rule.

Rules expose six structural classifiers, called forms A to F. Each form
checks the shape of a single rule and, if it matches, returns a witness
describing which First/Follow facts the rule is able to contribute:

    A   <A> --> t …          t ∈ First(<A>)
    B   <A> --> <B> …        First(<B>) ⊆ First(<A>)
    C   <A> -->              Follow(<A>) ⊆ First(<A>)
    D   … <B> t …            t ∈ Follow(<B>)
    E   … <B> <C> …          First(<C>) ⊆ Follow(<B>)
    F   <A> --> … <B>        Follow(<A>) ⊆ Follow(<B>)

Forms never look at any set; they are pure functions of the rule's shape.

___________________________________________________________________________

BSD License

Copyright © 2023, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package grammar

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
