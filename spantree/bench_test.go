// SPDX-License-Identifier: MIT

package spantree_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/factorgraph/fgraph"
	"github.com/katalvlaran/factorgraph/spantree"
)

// BenchmarkBuild_Chain measures traversal of a pairwise chain of N variables.
func BenchmarkBuild_Chain(b *testing.B) {
	const N = 10000
	g := fgraph.NewGraph(fgraph.WithCapacity(2 * N))
	for i := 0; i < N; i++ {
		_, _ = g.AddVariable(fmt.Sprintf("v%d", i), nil)
		if i > 0 {
			_, _ = g.AddFactor([]string{fmt.Sprintf("v%d", i-1), fmt.Sprintf("v%d", i)}, pot)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spantree.Build(g, "v0")
	}
}

// BenchmarkBuild_Star measures one factor with a very wide scope.
func BenchmarkBuild_Star(b *testing.B) {
	const N = 5000
	g := fgraph.NewGraph()
	scope := make([]string, N)
	for i := range scope {
		scope[i] = fmt.Sprintf("s%d", i)
		_, _ = g.AddVariable(scope[i], nil)
	}
	_, _ = g.AddFactor(scope, pot)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spantree.Build(g, "s0")
	}
}
