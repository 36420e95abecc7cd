/*
Package sets stores First and Follow sets.

Every non-terminal owns a SymbolSetPair, holding its First set and its
Follow set. Each set is a FactMap, a mapping from a terminal name to the
number of the rule which first justified the terminal's membership.

FactMaps are grow-only: once a terminal is present, its rule number never
changes and it is never removed. Iteration follows insertion order, so
reports and provenance are reproducible.
*/
package sets

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
