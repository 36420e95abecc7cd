package sets

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Fact is a single set membership: Terminal is in the set, justified by
// rule Num.
type Fact struct {
	Terminal string
	Num      int
}

// FactMap maps terminal names to justifying rule numbers, preserving
// insertion order. The zero value is not usable, create FactMaps with
// NewFactMap.
type FactMap struct {
	m *linkedhashmap.Map
}

// NewFactMap creates an empty fact map.
func NewFactMap() *FactMap {
	return &FactMap{m: linkedhashmap.New()}
}

// Insert adds terminal with justification num, unless terminal is already
// present. It returns true if the map changed.
func (fm *FactMap) Insert(terminal string, num int) bool {
	if _, found := fm.m.Get(terminal); found {
		return false
	}
	fm.m.Put(terminal, num)
	return true
}

// InsertAll inserts a batch of facts, skipping terminals already present.
// It returns true if at least one fact has been inserted.
func (fm *FactMap) InsertAll(batch []Fact) bool {
	changed := false
	for _, f := range batch {
		if fm.Insert(f.Terminal, f.Num) {
			changed = true
		}
	}
	return changed
}

// Get returns the justification for terminal.
func (fm *FactMap) Get(terminal string) (int, bool) {
	v, found := fm.m.Get(terminal)
	if !found {
		return 0, false
	}
	return v.(int), true
}

// Contains is true if terminal is a member.
func (fm *FactMap) Contains(terminal string) bool {
	_, found := fm.m.Get(terminal)
	return found
}

// Size is the number of facts.
func (fm *FactMap) Size() int {
	return fm.m.Size()
}

// Terminals returns the member terminals in insertion order.
func (fm *FactMap) Terminals() []string {
	keys := fm.m.Keys()
	terminals := make([]string, len(keys))
	for i, k := range keys {
		terminals[i] = k.(string)
	}
	return terminals
}

// Facts returns all facts in insertion order.
func (fm *FactMap) Facts() []Fact {
	return fm.AppendRelabeled(make([]Fact, 0, fm.m.Size()), -1)
}

// AppendRelabeled appends every member terminal to buf, justified by num
// instead of its own rule number. A negative num keeps the original
// justification.
//
// This is how set contents flow between non-terminals: the receiving set
// records the rule which caused the flow.
func (fm *FactMap) AppendRelabeled(buf []Fact, num int) []Fact {
	it := fm.m.Iterator()
	for it.Next() {
		f := Fact{Terminal: it.Key().(string), Num: it.Value().(int)}
		if num >= 0 {
			f.Num = num
		}
		buf = append(buf, f)
	}
	return buf
}

// Map returns the facts as a plain Go map.
func (fm *FactMap) Map() map[string]int {
	m := make(map[string]int, fm.m.Size())
	fm.m.Each(func(k, v interface{}) {
		m[k.(string)] = v.(int)
	})
	return m
}

func (fm *FactMap) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fm.Facts() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q:%d", f.Terminal, f.Num)
	}
	b.WriteByte('}')
	return b.String()
}
