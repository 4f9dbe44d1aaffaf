// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/builder"
)

// ExampleIsingGrid builds a 2×2 Ising model with an external field.
func ExampleIsingGrid() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithCoupling(0.8), builder.WithField(0.1)},
		builder.IsingGrid(2, 2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.NumVariables(), "spins,", g.NumFactors(), "factors")
	for _, f := range g.Factors()[:4] {
		fmt.Println(f.Scope())
	}
	// Output:
	// 4 spins, 8 factors
	// [0,0 0,1]
	// [0,0 1,0]
	// [0,1 1,1]
	// [1,0 1,1]
}

// ExampleChain names a three-spin chain with letters.
func ExampleChain() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)},
		builder.Chain(3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, f := range g.Factors() {
		fmt.Println(f.ID(), f.Label())
	}
	// Output:
	// 3 factor<A,B>
	// 4 factor<B,C>
}
