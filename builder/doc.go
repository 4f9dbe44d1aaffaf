// SPDX-License-Identifier: MIT

// Package builder provides deterministic factor-graph fixtures in the
// "constructor + functional options" style.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:       creates an fgraph.Graph and applies Constructors in order.
//     – Constructor:      a closure that adds variables and factors to a graph.
//   - Topologies:
//     – IsingGrid:        rows×cols spins with nearest-neighbour couplings.
//     – Chain:            n variables with pairwise factors between neighbours.
//   - Potentials:
//     – Coupling:         J·s_i·s_j over two binary spins.
//     – Field:            h·s_i over one binary spin.
//   - Variable naming (IDFn implementations):
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – SymbolIDFn:       single letters ("A","B",…).
//     – ExcelColumnIDFn:  Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn: prefix + decimal ("x0","x1",…).
//
// Guarantees:
//
//   - Option constructors panic on meaningless values; Constructors never panic
//     and return sentinel errors wrapped with method context.
//   - Same inputs, options and seed ⇒ identical graphs, IDs and potentials.
package builder
