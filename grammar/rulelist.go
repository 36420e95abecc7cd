package grammar

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// RuleList collects rules in input order. Loaders use it to build up a
// grammar rule by rule.
type RuleList struct {
	list *arraylist.List
}

// NewRuleList creates an empty rule list.
func NewRuleList() *RuleList {
	return &RuleList{list: arraylist.New()}
}

// Add creates a rule and appends it. The rule list is left untouched if
// the rule is malformed.
func (rl *RuleList) Add(lhs string, rhs []string, num int) error {
	r, err := NewRule(lhs, rhs, num)
	if err != nil {
		return err
	}
	rl.list.Add(r)
	return nil
}

// Append appends existing rules.
func (rl *RuleList) Append(rules ...*Rule) {
	for _, r := range rules {
		rl.list.Add(r)
	}
}

// Len returns the number of rules collected so far.
func (rl *RuleList) Len() int {
	return rl.list.Size()
}

// Rules returns the rules in insertion order.
func (rl *RuleList) Rules() []*Rule {
	rules := make([]*Rule, 0, rl.list.Size())
	it := rl.list.Iterator()
	for it.Next() {
		rules = append(rules, it.Value().(*Rule))
	}
	return rules
}

// NonTerminals returns the names of all left hand sides, each once, in the
// order they are first seen.
func (rl *RuleList) NonTerminals() []string {
	return NonTerminals(rl.Rules())
}

// NonTerminals returns the left hand side names of rules, each once, in
// the order they are first seen.
func NonTerminals(rules []*Rule) []string {
	seen := make(map[string]bool, len(rules))
	var names []string
	for _, r := range rules {
		if name := r.LHS().Name; !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
