/*
Package report prints grammar rules and First/Follow sets.

Sets are printed either as indented text blocks, one block per
non-terminal, or as JSON. Both formats keep the declaration order of
non-terminals and the insertion order of set members.
*/
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ffsets/grammar"
	"github.com/npillmayer/ffsets/sets"
	"golang.org/x/text/width"
)

// Format is an output format.
type Format int8

// Output formats
const (
	Text Format = iota
	JSON
)

// ParseFormat recognizes "text" and "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("unknown output format: %s (expected text or json)", s)
}

const separator = "-------------------------"

// nameColumn is the display width terminal names are padded to.
const nameColumn = 15

// Rules prints one rule per line, prefixed by its rule number.
func Rules(w io.Writer, rules []*grammar.Rule, format Format) error {
	if format == JSON {
		return writeRulesJSON(w, rules)
	}
	bw := bufio.NewWriter(w)
	for _, r := range rules {
		fmt.Fprintf(bw, "(%2d) %s\n", r.Num(), r)
	}
	return bw.Flush()
}

// Sets prints the First and Follow sets of every non-terminal in table.
// Epsilon is printed as a blank name.
func Sets(w io.Writer, table *sets.Table, format Format) error {
	if format == JSON {
		return writeSetsJSON(w, table)
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(separator + "\n")
	table.Each(func(nt string, p *sets.SymbolSetPair) {
		bw.WriteString(nt + "\n")
		bw.WriteString("Firsts:\n")
		writeFactMap(bw, p.Firsts())
		if p.Firsts().Size() == 0 {
			bw.WriteString("\n")
		}
		bw.WriteString("Follows:\n")
		writeFactMap(bw, p.Follows())
		bw.WriteString("\n\n\n" + separator + "\n")
	})
	return bw.Flush()
}

// writeFactMap prints "{}" without a line break for an empty map.
func writeFactMap(bw *bufio.Writer, fm *sets.FactMap) {
	if fm.Size() == 0 {
		bw.WriteString("{}")
		return
	}
	bw.WriteString("{\n")
	for _, f := range fm.Facts() {
		fmt.Fprintf(bw, "\t%s (%d)\n", pad(f.Terminal, nameColumn), f.Num)
	}
	bw.WriteString("}\n")
}

// pad right-pads s with blanks to n display columns. East Asian wide
// characters occupy two columns.
func pad(s string, n int) string {
	w := displayWidth(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}

func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// --- JSON ------------------------------------------------------------------

type jsonFact struct {
	Terminal string `json:"terminal"`
	Rule     int    `json:"rule"`
}

type jsonSets struct {
	NonTerminal string     `json:"nonterminal"`
	Firsts      []jsonFact `json:"firsts"`
	Follows     []jsonFact `json:"follows"`
}

type jsonRule struct {
	Number int      `json:"number"`
	LHS    string   `json:"lhs"`
	RHS    []string `json:"rhs"`
	Forms  []string `json:"forms,omitempty"`
}

func jsonFacts(fm *sets.FactMap) []jsonFact {
	facts := make([]jsonFact, 0, fm.Size())
	for _, f := range fm.Facts() {
		facts = append(facts, jsonFact{Terminal: f.Terminal, Rule: f.Num})
	}
	return facts
}

func writeSetsJSON(w io.Writer, table *sets.Table) error {
	out := make([]jsonSets, 0, table.Len())
	table.Each(func(nt string, p *sets.SymbolSetPair) {
		out = append(out, jsonSets{
			NonTerminal: nt,
			Firsts:      jsonFacts(p.Firsts()),
			Follows:     jsonFacts(p.Follows()),
		})
	})
	return encodeJSON(w, out)
}

func writeRulesJSON(w io.Writer, rules []*grammar.Rule) error {
	out := make([]jsonRule, len(rules))
	for i, r := range rules {
		out[i] = jsonRule{Number: r.Num(), LHS: r.LHS().Name, RHS: make([]string, r.Len())}
		for j := 0; j < r.Len(); j++ {
			out[i].RHS[j] = r.At(j).Name
		}
		for _, f := range r.Forms() {
			out[i].Forms = append(out[i].Forms, f.String())
		}
	}
	return encodeJSON(w, out)
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
