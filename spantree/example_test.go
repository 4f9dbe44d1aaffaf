// SPDX-License-Identifier: MIT

package spantree_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/factorgraph/fgraph"
	"github.com/katalvlaran/factorgraph/spantree"
)

// ExampleBuild prints the spanning tree of a small loopy graph as an indented outline.
//
//	(A)──[f3]──(B)──[f5]──(C)
//	  └──[f4]───┘
func ExampleBuild() {
	g := fgraph.NewGraph()
	_, _ = g.AddVariable("A", fgraph.Domain(0, 1))
	_, _ = g.AddVariable("B", fgraph.Domain(0, 1))
	_, _ = g.AddVariable("C", fgraph.Domain(0, 1))
	p := fgraph.PotentialFunc(func([]int) float64 { return 1 })
	_, _ = g.AddFactor([]string{"A", "B"}, p)
	_, _ = g.AddFactor([]string{"A", "B"}, p)
	_, _ = g.AddFactor([]string{"B", "C"}, p)

	tree, err := spantree.Build(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tree.Walk(func(n *spantree.Node) bool {
		fmt.Printf("%s%s\n", strings.Repeat("  ", n.Depth), n.Name)
		return true
	})
	// Output:
	// A
	//   factor<A,B>
	//     B
	//       factor<B,C>
	//         C
	//   factor<A,B>
}
