package grammar

// NonTerminalMarker is the first character of every non-terminal name.
const NonTerminalMarker = '<'

// EpsilonName is how the empty string is displayed.
const EpsilonName = "lambda"

// Symbol is a grammar symbol. Whether it is a terminal is decided once, at
// construction time, from its name.
type Symbol struct {
	Name     string
	terminal bool
}

// NewSymbol classifies name as a terminal or a non-terminal.
//
// A non-empty name starting with NonTerminalMarker is a non-terminal,
// everything else (including the empty name) is a terminal.
func NewSymbol(name string) Symbol {
	return Symbol{
		Name:     name,
		terminal: !IsNonTerminalName(name),
	}
}

// IsNonTerminalName reports whether name denotes a non-terminal.
func IsNonTerminalName(name string) bool {
	return len(name) > 0 && name[0] == NonTerminalMarker
}

// IsTerminal is true for terminals, including epsilon.
func (sym Symbol) IsTerminal() bool {
	return sym.terminal
}

// IsEpsilon is true for the empty terminal.
func (sym Symbol) IsEpsilon() bool {
	return sym.Name == ""
}

func (sym Symbol) String() string {
	if sym.IsEpsilon() {
		return EpsilonName
	}
	return sym.Name
}
