// SPDX-License-Identifier: MIT
// Package: builder
//
// potentials.go — Ising log-potentials over binary spins.
//
// Domain index 0 is spin −1, any other index is spin +1. A malformed
// assignment (wrong arity) scores NaN so it cannot be mistaken for a value.

package builder

import (
	"math"

	"github.com/katalvlaran/factorgraph/fgraph"
)

func spin(idx int) float64 {
	if idx == 0 {
		return -1
	}
	return 1
}

// Coupling returns the pairwise log-potential J·s_i·s_j.
func Coupling(j float64) fgraph.Potential {
	return fgraph.PotentialFunc(func(a []int) float64 {
		if len(a) != 2 {
			return math.NaN()
		}
		return j * spin(a[0]) * spin(a[1])
	})
}

// Field returns the unary log-potential h·s_i.
func Field(h float64) fgraph.Potential {
	return fgraph.PotentialFunc(func(a []int) float64 {
		if len(a) != 1 {
			return math.NaN()
		}
		return h * spin(a[0])
	})
}
