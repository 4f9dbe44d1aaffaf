// SPDX-License-Identifier: MIT

package fgraph

// Potential scores a joint assignment of a factor's scope.
//
// The assignment holds one domain index per scope variable, in scope order.
// The graph only stores potentials; evaluation belongs to inference code
// built on top of it.
type Potential interface {
	Score(assignment []int) float64
}

// PotentialFunc adapts an ordinary function to the Potential interface.
type PotentialFunc func(assignment []int) float64

// Score calls f(assignment).
func (f PotentialFunc) Score(assignment []int) float64 { return f(assignment) }

// isNilPotential reports p == nil, including a nil PotentialFunc boxed in
// the interface.
func isNilPotential(p Potential) bool {
	switch f := p.(type) {
	case nil:
		return true
	case PotentialFunc:
		return f == nil
	default:
		return false
	}
}
