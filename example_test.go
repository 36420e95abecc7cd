package ffsets_test

import (
	"fmt"

	"github.com/npillmayer/ffsets"
	"github.com/npillmayer/ffsets/grammar"
	"github.com/npillmayer/ffsets/sets"
)

func ExampleSolver() {
	rules := []*grammar.Rule{
		grammar.MustRule("<S>", []string{"<A>", "b"}, 1),
		grammar.MustRule("<A>", []string{"a"}, 2),
		grammar.MustRule("<A>", nil, 3),
	}
	result, err := ffsets.NewSolver(rules).Solve()
	if err != nil {
		fmt.Println(err)
		return
	}
	result.Table.Each(func(nt string, p *sets.SymbolSetPair) {
		fmt.Printf("%s First=%v Follow=%v\n", nt, p.Firsts(), p.Follows())
	})
	// Output:
	// <S> First={"a":1, "b":1} Follow={}
	// <A> First={"a":2, "b":3} Follow={"b":1}
}
