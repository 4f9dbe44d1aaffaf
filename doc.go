// SPDX-License-Identifier: MIT

// Package factorgraph is an in-memory toolkit for building probabilistic
// factor graphs, deriving breadth-first spanning trees from them, and
// exporting either one to Graphviz.
//
// Under the hood, everything is organized under these subpackages:
//
//	fgraph/    Variable, Factor, Item and the incremental Graph builder
//	spantree/  breadth-first spanning trees rooted at a named variable
//	render/    node/edge/label/shape enumeration for visualizers
//	dotviz/    DOT output over render.Renderable (gonum encoder)
//	builder/   deterministic Ising-grid and chain fixtures
//	config/    koanf-backed settings for cmd/fgviz
//	logging/   slog handlers shared by the command and the core
//
// Quick ASCII example:
//
//	(A)──[A,B]──(B)──[B,C]──(C)
//
// is three variables and two pairwise factors; its spanning tree from A is
// the same path, A → [A,B] → B → [B,C] → C.
//
// Inference (belief propagation, sampling) is out of scope: factors carry a
// Potential that this module stores but never evaluates.
package factorgraph
