package ffsets

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/ffsets/grammar"
	"github.com/npillmayer/ffsets/sets"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func workedExample() []*grammar.Rule {
	return []*grammar.Rule{
		grammar.MustRule("<S>", []string{"<A>", "b"}, 1),
		grammar.MustRule("<A>", []string{"a"}, 2),
		grammar.MustRule("<A>", nil, 3),
	}
}

func expressions() []*grammar.Rule {
	return []*grammar.Rule{
		grammar.MustRule("<E>", []string{"<T>", "<E'>"}, 1),
		grammar.MustRule("<E'>", []string{"+", "<T>", "<E'>"}, 2),
		grammar.MustRule("<E'>", nil, 3),
		grammar.MustRule("<T>", []string{"<F>", "<T'>"}, 4),
		grammar.MustRule("<T'>", []string{"*", "<F>", "<T'>"}, 5),
		grammar.MustRule("<T'>", nil, 6),
		grammar.MustRule("<F>", []string{"(", "<E>", ")"}, 7),
		grammar.MustRule("<F>", []string{"id"}, 8),
	}
}

func terminals(rules []*grammar.Rule) map[string]bool {
	ts := make(map[string]bool)
	for _, r := range rules {
		for _, sym := range r.RHS() {
			if sym.IsTerminal() {
				ts[sym.Name] = true
			}
		}
	}
	return ts
}

func TestWorkedExample(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := NewSolver(workedExample())
	res, err := s.Solve()
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != Converged {
		t.Errorf("expected solver to be converged")
	}
	expect := map[string][2]map[string]int{
		"<S>": {{"a": 1, "b": 1}, {}},
		"<A>": {{"a": 2, "b": 3}, {"b": 1}},
	}
	for nt, sets := range expect {
		if f := res.Firsts(nt); !reflect.DeepEqual(f, sets[0]) {
			t.Errorf("First(%s): expected %v, have %v", nt, sets[0], f)
		}
		if f := res.Follows(nt); !reflect.DeepEqual(f, sets[1]) {
			t.Errorf("Follow(%s): expected %v, have %v", nt, sets[1], f)
		}
	}
	if res.Iterations != 3 {
		t.Errorf("expected 3 iterations, have %d", res.Iterations)
	}
	if res.Facts != 5 {
		t.Errorf("expected 5 facts, have %d", res.Facts)
	}
	if !reflect.DeepEqual(res.Table.NonTerminals(), []string{"<S>", "<A>"}) {
		t.Errorf("unexpected order of non-terminals: %v", res.Table.NonTerminals())
	}
	p, _ := res.Pair("<A>")
	if !reflect.DeepEqual(p.Firsts().Terminals(), []string{"a", "b"}) {
		t.Errorf("unexpected insertion order %v", p.Firsts().Terminals())
	}
}

func TestLeftRecursion(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	rules := []*grammar.Rule{
		grammar.MustRule("<E>", []string{"<E>", "+", "<T>"}, 1),
		grammar.MustRule("<E>", []string{"<T>"}, 2),
		grammar.MustRule("<T>", []string{"id"}, 3),
	}
	res, err := NewSolver(rules).Solve()
	if err != nil {
		t.Fatal(err)
	}
	if f := res.Firsts("<E>"); !reflect.DeepEqual(f, map[string]int{"id": 2}) {
		t.Errorf("First(<E>) = %v", f)
	}
	if f := res.Firsts("<T>"); !reflect.DeepEqual(f, map[string]int{"id": 3}) {
		t.Errorf("First(<T>) = %v", f)
	}
	if f := res.Follows("<E>"); !reflect.DeepEqual(f, map[string]int{"+": 1}) {
		t.Errorf("Follow(<E>) = %v", f)
	}
	if f := res.Follows("<T>"); !reflect.DeepEqual(f, map[string]int{"+": 1}) {
		t.Errorf("Follow(<T>) = %v", f)
	}
	if res.Iterations != 2 {
		t.Errorf("expected 2 iterations, have %d", res.Iterations)
	}
}

func TestExpressionGrammar(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	res, err := NewSolver(expressions()).Solve()
	if err != nil {
		t.Fatal(err)
	}
	if res.Iterations != 4 {
		t.Errorf("expected 4 iterations, have %d", res.Iterations)
	}
	// copied facts carry the number of the rule which copied them
	firsts := map[string]map[string]int{
		"<E>":  {"(": 1, "id": 1},
		"<E'>": {"+": 2, ")": 3},
		"<T>":  {"(": 4, "id": 4},
		"<T'>": {"*": 5, "+": 6, ")": 6},
		"<F>":  {"(": 7, "id": 8},
	}
	follows := map[string]map[string]int{
		"<E>":  {")": 7},
		"<E'>": {")": 1},
		"<T>":  {"+": 1, ")": 1},
		"<T'>": {"+": 4, ")": 4},
		"<F>":  {"*": 4, "+": 4, ")": 4},
	}
	for nt, want := range firsts {
		if have := res.Firsts(nt); !reflect.DeepEqual(have, want) {
			t.Errorf("First(%s): expected %v, have %v", nt, want, have)
		}
	}
	for nt, want := range follows {
		if have := res.Follows(nt); !reflect.DeepEqual(have, want) {
			t.Errorf("Follow(%s): expected %v, have %v", nt, want, have)
		}
	}
	if res.Facts != 20 {
		t.Errorf("expected 20 facts, have %d", res.Facts)
	}
}

func TestUnresolvedNonTerminal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	rules := []*grammar.Rule{
		grammar.MustRule("<S>", []string{"a", "<X>"}, 1),
	}
	res, err := NewSolver(rules).Solve()
	if err == nil || res != nil {
		t.Fatalf("expected unresolved <X> to fail")
	}
	if !errors.Is(err, sets.ErrUnresolved) {
		t.Errorf("expected ErrUnresolved, got %v", err)
	}
	t.Logf("error = %v", err)
}

func TestMonotonicityAndProvenance(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var prev map[string][2]map[string]int
	hook := func(i int, table *sets.Table) {
		snap := table.Snapshot()
		for nt, old := range prev {
			for k := 0; k < 2; k++ {
				for term, num := range old[k] {
					n, ok := snap[nt][k][term]
					if !ok {
						t.Errorf("iteration %d lost %q from set %d of %s", i, term, k, nt)
					} else if n != num {
						t.Errorf("iteration %d changed justification of %q in %s from %d to %d",
							i, term, nt, num, n)
					}
				}
			}
		}
		prev = snap
	}
	if _, err := NewSolver(expressions(), WithIterationHook(hook)).Solve(); err != nil {
		t.Fatal(err)
	}
}

func TestIdempotence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	rules := expressions()
	s := NewSolver(rules)
	res, err := s.Solve()
	if err != nil {
		t.Fatal(err)
	}
	before := res.Table.Snapshot()
	changed, err := Iterate(rules, res.Table)
	if err != nil || changed {
		t.Errorf("iteration after convergence must not change anything")
	}
	if changed, _ = s.Step(); changed {
		t.Errorf("step after convergence must not change anything")
	}
	if !reflect.DeepEqual(before, res.Table.Snapshot()) {
		t.Errorf("table changed after convergence")
	}
}

func TestTerminationBound(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, rules := range [][]*grammar.Rule{workedExample(), expressions()} {
		res, err := NewSolver(rules).Solve()
		if err != nil {
			t.Fatal(err)
		}
		bound := len(terminals(rules)) * res.Table.Len()
		if res.Iterations > bound {
			t.Errorf("expected at most %d iterations, have %d", bound, res.Iterations)
		}
	}
}

func TestMaxIterations(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := NewSolver(workedExample(), WithMaxIterations(2)).Solve()
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("expected ErrNoConvergence, got %v", err)
	}
	if _, err = NewSolver(workedExample(), WithMaxIterations(3)).Solve(); err != nil {
		t.Errorf("3 iterations should suffice, got %v", err)
	}
}

func TestOrderIndependentMembership(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	rules := expressions()
	reversed := make([]*grammar.Rule, len(rules))
	for i, r := range rules {
		reversed[len(rules)-1-i] = r
	}
	a, err := NewSolver(rules).Solve()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSolver(reversed).Solve()
	if err != nil {
		t.Fatal(err)
	}
	for _, nt := range a.Table.NonTerminals() {
		pa, _ := a.Pair(nt)
		pb, err := b.Pair(nt)
		if err != nil {
			t.Fatal(err)
		}
		if !sameMembers(pa.Firsts(), pb.Firsts()) || !sameMembers(pa.Follows(), pb.Follows()) {
			t.Errorf("membership for %s depends on rule order: %v vs %v", nt, pa, pb)
		}
	}
}

func sameMembers(a, b *sets.FactMap) bool {
	if a.Size() != b.Size() {
		return false
	}
	for _, term := range a.Terminals() {
		if !b.Contains(term) {
			return false
		}
	}
	return true
}
