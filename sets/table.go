package sets

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// ErrUnresolved is returned for a reference to a non-terminal which has no
// set pair, i.e. which never occurs as the left hand side of a rule.
var ErrUnresolved = errors.New("unresolved non-terminal")

// Table maps non-terminal names to their set pairs, in the order the
// non-terminals have been declared.
type Table struct {
	pairs *linkedhashmap.Map
}

// NewTable creates a table with an empty set pair for each of nonterms.
// Duplicate names are ignored.
func NewTable(nonterms ...string) *Table {
	t := &Table{pairs: linkedhashmap.New()}
	for _, nt := range nonterms {
		t.Declare(nt)
	}
	return t
}

// Declare creates an empty set pair for nonterm, if not yet present, and
// returns the pair.
func (t *Table) Declare(nonterm string) *SymbolSetPair {
	if p, found := t.pairs.Get(nonterm); found {
		return p.(*SymbolSetPair)
	}
	p := NewSymbolSetPair()
	t.pairs.Put(nonterm, p)
	return p
}

// Pair looks up the set pair of nonterm. A missing entry is an error
// wrapping ErrUnresolved.
func (t *Table) Pair(nonterm string) (*SymbolSetPair, error) {
	p, found := t.pairs.Get(nonterm)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnresolved, nonterm)
	}
	return p.(*SymbolSetPair), nil
}

// NonTerminals returns the declared non-terminals in declaration order.
func (t *Table) NonTerminals() []string {
	keys := t.pairs.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Len is the number of declared non-terminals.
func (t *Table) Len() int {
	return t.pairs.Size()
}

// Facts counts all facts of all set pairs.
func (t *Table) Facts() int {
	n := 0
	t.pairs.Each(func(_, v interface{}) {
		n += v.(*SymbolSetPair).Size()
	})
	return n
}

// Each calls f for every non-terminal in declaration order.
func (t *Table) Each(f func(nonterm string, p *SymbolSetPair)) {
	it := t.pairs.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().(*SymbolSetPair))
	}
}

// Snapshot returns a deep copy of the table's current facts, keyed by
// non-terminal. It is used to observe the progress of a computation.
func (t *Table) Snapshot() map[string][2]map[string]int {
	snap := make(map[string][2]map[string]int, t.pairs.Size())
	t.Each(func(nt string, p *SymbolSetPair) {
		snap[nt] = [2]map[string]int{p.firsts.Map(), p.follows.Map()}
	})
	return snap
}
