// SPDX-License-Identifier: MIT

// Package fgraph defines the bipartite factor graph model: variables,
// factors, the shared identifier space, and an incremental builder.
//
// A factor graph G = (V ∪ F, E) has two node kinds:
//
//   - Variables carry a unique name and an ordered domain of value labels.
//   - Factors are defined over an ordered scope of variable names and carry
//     an opaque Potential that the graph stores but never evaluates.
//
// Every edge joins exactly one variable and one factor. Edges are never
// added directly; they are implied by factor scopes at AddFactor time.
//
// Identifiers:
//
//	Variables and factors share one ID space. IDs are allocated densely
//	from 0 in insertion order and never reused. A rejected insertion does
//	not consume an ID, so IDs() is always exactly 0..Len()-1.
//
// Quick ASCII example:
//
//	(A)──[f3]──(B)──[f4]──(C)
//	 0          1          2
//
// built by:
//
//	g := fgraph.NewGraph()
//	_, _ = g.AddVariable("A", fgraph.Domain(0, 1))
//	_, _ = g.AddVariable("B", fgraph.Domain(0, 1))
//	_, _ = g.AddVariable("C", fgraph.Domain(0, 1))
//	_, _ = g.AddFactor([]string{"A", "B"}, pot) // id 3
//	_, _ = g.AddFactor([]string{"B", "C"}, pot) // id 4
//
// Errors:
//
//	ErrEmptyName       - variable name is the empty string.
//	ErrDuplicateName   - a variable with the same name already exists.
//	ErrEmptyScope      - factor scope has no variables.
//	ErrDuplicateScope  - a scope lists the same variable twice.
//	ErrNilPotential    - factor potential is nil.
//	ErrUnknownVariable - a scope name does not resolve to a variable.
//	ErrInconsistent    - registry and incidence lists disagree (internal bug).
//
// Concurrency:
//
//	A Graph is a single-writer value. It holds no locks; callers must not
//	mutate it while another goroutine reads it or traverses it.
package fgraph
