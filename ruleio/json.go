package ruleio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/ffsets/grammar"
)

// JSONRule is the JSON representation of a rule.
type JSONRule struct {
	LHS    string   `json:"lhs"`
	RHS    []string `json:"rhs"`
	Number int      `json:"number"`
}

// ReadJSON reads an array of JSONRule objects.
func ReadJSON(r io.Reader) ([]*grammar.Rule, error) {
	var in []JSONRule
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	rl := grammar.NewRuleList()
	for i, jr := range in {
		if err := rl.Add(jr.LHS, jr.RHS, jr.Number); err != nil {
			return nil, fmt.Errorf("rule object #%d: %w", i, err)
		}
	}
	return rl.Rules(), nil
}

// WriteJSON writes rules as an array of JSONRule objects, the inverse of
// ReadJSON.
func WriteJSON(w io.Writer, rules []*grammar.Rule) error {
	out := make([]JSONRule, len(rules))
	for i, r := range rules {
		out[i] = JSONRule{LHS: r.LHS().Name, RHS: make([]string, r.Len()), Number: r.Num()}
		for j := 0; j < r.Len(); j++ {
			out[i].RHS[j] = r.At(j).Name
		}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
