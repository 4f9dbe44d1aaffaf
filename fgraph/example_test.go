// SPDX-License-Identifier: MIT

package fgraph_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/factorgraph/fgraph"
)

// ExampleGraph_AddFactor builds a three-variable chain and lists each node's neighbors.
func ExampleGraph_AddFactor() {
	g := fgraph.NewGraph()
	for _, name := range []string{"A", "B", "C"} {
		_, _ = g.AddVariable(name, fgraph.Domain(0, 1))
	}
	agree := fgraph.PotentialFunc(func(a []int) float64 {
		if a[0] == a[1] {
			return 1
		}
		return 0
	})
	_, _ = g.AddFactor([]string{"A", "B"}, agree)
	_, _ = g.AddFactor([]string{"B", "C"}, agree)

	for _, id := range g.IDs() {
		it, _ := g.ItemByID(id)
		nbrs, _ := g.NeighborIDs(id)
		fmt.Println(id, it.Name(), nbrs)
	}
	// Output:
	// 0 A [3]
	// 1 B [3 4]
	// 2 C [4]
	// 3 factor<A,B> [0 1]
	// 4 factor<B,C> [1 2]
}

// ExampleGraph_AddFactor_unknownVariable shows that a rejected factor leaves no trace.
func ExampleGraph_AddFactor_unknownVariable() {
	g := fgraph.NewGraph()
	_, err := g.AddFactor([]string{"Z"}, fgraph.PotentialFunc(func([]int) float64 { return 0 }))

	fmt.Println(errors.Is(err, fgraph.ErrUnknownVariable))
	fmt.Println(len(g.IDs()))
	// Output:
	// true
	// 0
}
