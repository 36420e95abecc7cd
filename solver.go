package ffsets

import (
	"errors"
	"fmt"

	"github.com/npillmayer/ffsets/grammar"
	"github.com/npillmayer/ffsets/sets"
)

// ErrNoConvergence is returned if a solver has been limited to a maximum
// number of iterations and did not reach the fixed point within it.
var ErrNoConvergence = errors.New("no fixed point reached within iteration limit")

// State is the state of a Solver.
type State int8

// A Solver is Running until an iteration produces no new facts.
const (
	Running State = iota
	Converged
)

func (s State) String() string {
	if s == Converged {
		return "converged"
	}
	return "running"
}

// Solver computes First and Follow sets for a list of rules.
//
// A Solver owns a table with one set pair per non-terminal. The table is
// created empty and grows with every iteration until the fixed point is
// reached.
type Solver struct {
	rules      []*grammar.Rule
	table      *sets.Table
	iterations int
	state      State
	maxIter    int
	hook       func(int, *sets.Table)
}

// Option configures a Solver.
type Option func(*Solver)

// WithIterationHook sets a function to be called after every iteration,
// with the 1-based iteration count and the current table. The hook must
// not modify the table.
func WithIterationHook(hook func(iteration int, table *sets.Table)) Option {
	return func(s *Solver) {
		s.hook = hook
	}
}

// WithMaxIterations limits the number of iterations. n <= 0 means no limit,
// which is the default.
func WithMaxIterations(n int) Option {
	return func(s *Solver) {
		s.maxIter = n
	}
}

// NewSolver creates a solver for rules. Every left hand side gets an empty
// set pair, in the order of first appearance.
func NewSolver(rules []*grammar.Rule, opts ...Option) *Solver {
	s := &Solver{
		rules: rules,
		table: sets.NewTable(grammar.NonTerminals(rules)...),
	}
	for _, opt := range opts {
		opt(s)
	}
	CT().Debugf("solver for %d rules and %d non-terminals", len(rules), s.table.Len())
	return s
}

// Step performs a single iteration. It returns true if new facts have
// been derived. A solver is Converged after the first iteration without
// any change. Calling Step on a converged solver is allowed; it will not
// find anything new.
func (s *Solver) Step() (bool, error) {
	changed, err := Iterate(s.rules, s.table)
	if err != nil {
		return false, err
	}
	s.iterations++
	CT().Debugf("iteration %d: changed=%v, %d facts", s.iterations, changed, s.table.Facts())
	if s.hook != nil {
		s.hook(s.iterations, s.table)
	}
	if !changed {
		s.state = Converged
	}
	return changed, nil
}

// Solve iterates until the fixed point is reached.
//
// Errors from unresolved non-terminals abort the computation. No partial
// result is returned in this case.
func (s *Solver) Solve() (*Result, error) {
	for s.state != Converged {
		if s.maxIter > 0 && s.iterations >= s.maxIter {
			return nil, fmt.Errorf("%w (%d)", ErrNoConvergence, s.maxIter)
		}
		if _, err := s.Step(); err != nil {
			CT().Errorf("solver failed: %v", err)
			return nil, err
		}
	}
	CT().Infof("converged after %d iterations with %d facts", s.iterations, s.table.Facts())
	return s.Result(), nil
}

// State returns the current state of the solver.
func (s *Solver) State() State {
	return s.state
}

// Iterations returns the number of iterations performed so far.
func (s *Solver) Iterations() int {
	return s.iterations
}

// Table returns the solver's table in its current state.
func (s *Solver) Table() *sets.Table {
	return s.table
}

// Result wraps the current table.
func (s *Solver) Result() *Result {
	return &Result{
		Table:      s.table,
		Iterations: s.iterations,
		Facts:      s.table.Facts(),
	}
}

// Result is the outcome of a computation.
type Result struct {
	Table      *sets.Table // one set pair per non-terminal
	Iterations int         // number of iterations, including the final one without change
	Facts      int         // total number of First and Follow facts
}

// Pair returns the set pair for non-terminal nonterm.
func (r *Result) Pair(nonterm string) (*sets.SymbolSetPair, error) {
	return r.Table.Pair(nonterm)
}

// Firsts returns the First set of nonterm as a map terminal → rule number.
// It returns nil for unknown non-terminals.
func (r *Result) Firsts(nonterm string) map[string]int {
	if p, err := r.Table.Pair(nonterm); err == nil {
		return p.Firsts().Map()
	}
	return nil
}

// Follows returns the Follow set of nonterm as a map terminal → rule number.
// It returns nil for unknown non-terminals.
func (r *Result) Follows(nonterm string) map[string]int {
	if p, err := r.Table.Pair(nonterm); err == nil {
		return p.Follows().Map()
	}
	return nil
}
