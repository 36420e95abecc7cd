package sets

// SymbolSetPair holds the First and Follow sets of a single non-terminal.
type SymbolSetPair struct {
	firsts  *FactMap
	follows *FactMap
}

// NewSymbolSetPair creates a pair of empty sets.
func NewSymbolSetPair() *SymbolSetPair {
	return &SymbolSetPair{
		firsts:  NewFactMap(),
		follows: NewFactMap(),
	}
}

// Firsts is the First set. Clients must not modify it other than through
// the Add… methods.
func (p *SymbolSetPair) Firsts() *FactMap {
	return p.firsts
}

// Follows is the Follow set. Clients must not modify it other than through
// the Add… methods.
func (p *SymbolSetPair) Follows() *FactMap {
	return p.follows
}

// AddFirst inserts a single fact into the First set.
// Returns true if the terminal has not been a member before.
func (p *SymbolSetPair) AddFirst(terminal string, num int) bool {
	return p.firsts.Insert(terminal, num)
}

// AddFirsts inserts a batch of facts into the First set.
// Returns true if at least one terminal has been new.
func (p *SymbolSetPair) AddFirsts(batch []Fact) bool {
	return p.firsts.InsertAll(batch)
}

// AddFollow inserts a single fact into the Follow set.
func (p *SymbolSetPair) AddFollow(terminal string, num int) bool {
	return p.follows.Insert(terminal, num)
}

// AddFollows inserts a batch of facts into the Follow set.
func (p *SymbolSetPair) AddFollows(batch []Fact) bool {
	return p.follows.InsertAll(batch)
}

// Size is the total number of facts in both sets.
func (p *SymbolSetPair) Size() int {
	return p.firsts.Size() + p.follows.Size()
}

func (p *SymbolSetPair) String() string {
	return "First=" + p.firsts.String() + " Follow=" + p.follows.String()
}
