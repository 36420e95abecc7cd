package ffsets

import (
	"fmt"

	"github.com/npillmayer/ffsets/grammar"
	"github.com/npillmayer/ffsets/sets"
)

// pass applies a single form to every rule of a grammar.
type pass struct {
	form  grammar.Form
	apply func(*grammar.Rule, *sets.Table, *factBatch) (bool, error)
}

// passes is the fixed order of forms within an iteration.
var passes = [...]pass{
	{grammar.FormA, applyFormA},
	{grammar.FormB, applyFormB},
	{grammar.FormD, applyFormD},
	{grammar.FormE, applyFormE},
	{grammar.FormF, applyFormF},
	{grammar.FormC, applyFormC},
}

// Iterate performs a single iteration over rules, inserting every fact
// derivable in one sweep of the forms A, B, D, E, F, C into table.
// It returns true if any fact has been inserted.
//
// table is modified in place and must not be shared with concurrent
// computations. Every non-terminal referenced by rules must have been
// declared in table, otherwise an error wrapping sets.ErrUnresolved is
// returned.
func Iterate(rules []*grammar.Rule, table *sets.Table) (bool, error) {
	batch := borrowBatch()
	defer batch.release()
	changed := false
	for _, p := range passes {
		for _, r := range rules {
			c, err := p.apply(r, table, batch)
			if err != nil {
				return changed, fmt.Errorf("form %s, rule %d: %w", p.form, r.Num(), err)
			}
			changed = c || changed
		}
	}
	return changed, nil
}

// First(lhs) += { t }
func applyFormA(r *grammar.Rule, table *sets.Table, _ *factBatch) (bool, error) {
	w, ok := r.FormA()
	if !ok {
		return false, nil
	}
	p, err := table.Pair(w.NonTerminal)
	if err != nil {
		return false, err
	}
	return p.AddFirst(w.Terminal, w.Num), nil
}

// First(lhs) += First(rhs[0])
func applyFormB(r *grammar.Rule, table *sets.Table, batch *factBatch) (bool, error) {
	ref, ok := r.FormB()
	if !ok {
		return false, nil
	}
	return flow(table, ref.NonTerminal, r.LHS().Name, ref.Num, batch,
		(*sets.SymbolSetPair).Firsts, (*sets.SymbolSetPair).AddFirsts)
}

// Follow(X) += { t } for every X t
func applyFormD(r *grammar.Rule, table *sets.Table, _ *factBatch) (bool, error) {
	w, ok := r.FormD()
	if !ok {
		return false, nil
	}
	changed := false
	for _, pair := range w.Pairs {
		p, err := table.Pair(pair.Left)
		if err != nil {
			return changed, err
		}
		changed = p.AddFollow(pair.Right, w.Num) || changed
	}
	return changed, nil
}

// Follow(X) += First(Y) for every X Y
func applyFormE(r *grammar.Rule, table *sets.Table, batch *factBatch) (bool, error) {
	w, ok := r.FormE()
	if !ok {
		return false, nil
	}
	changed := false
	for _, pair := range w.Pairs {
		c, err := flow(table, pair.Right, pair.Left, w.Num, batch,
			(*sets.SymbolSetPair).Firsts, (*sets.SymbolSetPair).AddFollows)
		if err != nil {
			return changed, err
		}
		changed = c || changed
	}
	return changed, nil
}

// Follow(rhs[-1]) += Follow(lhs)
func applyFormF(r *grammar.Rule, table *sets.Table, batch *factBatch) (bool, error) {
	ref, ok := r.FormF()
	if !ok {
		return false, nil
	}
	return flow(table, r.LHS().Name, ref.NonTerminal, ref.Num, batch,
		(*sets.SymbolSetPair).Follows, (*sets.SymbolSetPair).AddFollows)
}

// First(lhs) += Follow(lhs)
func applyFormC(r *grammar.Rule, table *sets.Table, batch *factBatch) (bool, error) {
	ref, ok := r.FormC()
	if !ok {
		return false, nil
	}
	return flow(table, ref.NonTerminal, ref.NonTerminal, ref.Num, batch,
		(*sets.SymbolSetPair).Follows, (*sets.SymbolSetPair).AddFirsts)
}

// flow copies the facts of one set of non-terminal from into a set of
// non-terminal to, justifying every copied fact with rule num.
func flow(table *sets.Table, from, to string, num int, batch *factBatch,
	source func(*sets.SymbolSetPair) *sets.FactMap,
	insert func(*sets.SymbolSetPair, []sets.Fact) bool) (bool, error) {
	//
	src, err := table.Pair(from)
	if err != nil {
		return false, err
	}
	dst, err := table.Pair(to)
	if err != nil {
		return false, err
	}
	batch.facts = source(src).AppendRelabeled(batch.facts[:0], num)
	return insert(dst, batch.facts), nil
}
