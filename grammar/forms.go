package grammar

// Form identifies one of the six structural rule classifiers.
type Form int8

// The forms, in the order the solver applies them is A, B, D, E, F, C.
const (
	FormA Form = iota // <A> --> t …
	FormB             // <A> --> <B> …
	FormC             // <A> --> (empty)
	FormD             // … <B> t …
	FormE             // … <B> <C> …
	FormF             // <A> --> … <B>
)

func (f Form) String() string {
	if f < FormA || f > FormF {
		return "?"
	}
	return string(rune('A' + f))
}

// TerminalStart is the witness of form A: Terminal starts a derivation of
// NonTerminal.
type TerminalStart struct {
	NonTerminal string
	Terminal    string
	Num         int
}

// Ref is the witness of forms B, C and F, naming a single non-terminal.
type Ref struct {
	NonTerminal string
	Num         int
}

// Pair is a pair of adjacent right hand side symbols, Left always being
// a non-terminal.
type Pair struct {
	Left, Right string
}

// Pairs is the witness of forms D and E.
type Pairs struct {
	Pairs []Pair
	Num   int
}

// FormA matches if the right hand side starts with a terminal.
func (r *Rule) FormA() (TerminalStart, bool) {
	if len(r.rhs) > 0 && r.rhs[0].IsTerminal() {
		return TerminalStart{NonTerminal: r.lhs.Name, Terminal: r.rhs[0].Name, Num: r.num}, true
	}
	return TerminalStart{}, false
}

// FormB matches if the right hand side starts with a non-terminal, which
// is returned.
func (r *Rule) FormB() (Ref, bool) {
	if len(r.rhs) == 0 || r.rhs[0].IsTerminal() {
		return Ref{}, false
	}
	return Ref{NonTerminal: r.rhs[0].Name, Num: r.num}, true
}

// FormC matches epsilon rules and returns the left hand side.
func (r *Rule) FormC() (Ref, bool) {
	if len(r.rhs) > 0 {
		return Ref{}, false
	}
	return Ref{NonTerminal: r.lhs.Name, Num: r.num}, true
}

// FormD collects every non-terminal immediately followed by a terminal.
func (r *Rule) FormD() (Pairs, bool) {
	return r.adjacent(func(next Symbol) bool { return next.IsTerminal() })
}

// FormE collects every non-terminal immediately followed by another
// non-terminal.
func (r *Rule) FormE() (Pairs, bool) {
	return r.adjacent(func(next Symbol) bool { return !next.IsTerminal() })
}

func (r *Rule) adjacent(accept func(Symbol) bool) (Pairs, bool) {
	var pairs []Pair
	for i := 0; i+1 < len(r.rhs); i++ {
		if !r.rhs[i].IsTerminal() && accept(r.rhs[i+1]) {
			pairs = append(pairs, Pair{Left: r.rhs[i].Name, Right: r.rhs[i+1].Name})
		}
	}
	if len(pairs) == 0 {
		return Pairs{}, false
	}
	return Pairs{Pairs: pairs, Num: r.num}, true
}

// FormF matches if the right hand side ends with a non-terminal, which is
// returned.
func (r *Rule) FormF() (Ref, bool) {
	if len(r.rhs) > 0 && !r.rhs[len(r.rhs)-1].IsTerminal() {
		return Ref{NonTerminal: r.rhs[len(r.rhs)-1].Name, Num: r.num}, true
	}
	return Ref{}, false
}

// Forms lists the forms r matches, in alphabetical order.
func (r *Rule) Forms() []Form {
	var forms []Form
	if _, ok := r.FormA(); ok {
		forms = append(forms, FormA)
	}
	if _, ok := r.FormB(); ok {
		forms = append(forms, FormB)
	}
	if _, ok := r.FormC(); ok {
		forms = append(forms, FormC)
	}
	if _, ok := r.FormD(); ok {
		forms = append(forms, FormD)
	}
	if _, ok := r.FormE(); ok {
		forms = append(forms, FormE)
	}
	if _, ok := r.FormF(); ok {
		forms = append(forms, FormF)
	}
	return forms
}
