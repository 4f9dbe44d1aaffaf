// SPDX-License-Identifier: MIT

// Package dotviz writes a render.Renderable as a Graphviz DOT digraph.
//
// Variables are drawn as circles, factors as boxes, node IDs as "N<id>" and
// every edge without an arrowhead. Layout is delegated to gonum's DOT
// encoder, which orders nodes and edges by ID.
package dotviz

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/factorgraph/render"
)

// DefaultName is the graph identifier used when Marshal gets an empty name.
const DefaultName = "factor_graph"

// ErrBadEdge is returned when a Renderable lists an edge whose endpoints are
// not among its nodes, or that loops back on itself.
var ErrBadEdge = errors.New("dotviz: edge endpoint not rendered")

// node carries the per-node DOT attributes.
type node struct {
	id    int64
	label string
	shape string
}

func (n node) ID() int64 { return n.id }

// DOTID implements dot.Node.
func (n node) DOTID() string { return fmt.Sprintf("N%d", n.id) }

// Attributes implements encoding.Attributer.
func (n node) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: n.label},
		{Key: "shape", Value: n.shape},
	}
}

type attrs []encoding.Attribute

func (a attrs) Attributes() []encoding.Attribute { return a }

// digraph attaches graph-wide edge attributes to the gonum graph.
type digraph struct {
	*simple.DirectedGraph
}

// DOTAttributers implements dot.Attributers.
func (digraph) DOTAttributers() (g, n, e encoding.Attributer) {
	return attrs(nil), attrs(nil), attrs{{Key: "arrowhead", Value: "none"}}
}

// build copies r into a gonum directed graph.
func build(r render.Renderable) (digraph, error) {
	g := digraph{simple.NewDirectedGraph()}
	for _, id := range r.NodeIDs() {
		label, err := r.Label(id)
		if err != nil {
			return digraph{}, fmt.Errorf("dotviz: label %d: %w", id, err)
		}
		shape, err := r.Shape(id)
		if err != nil {
			return digraph{}, fmt.Errorf("dotviz: shape %d: %w", id, err)
		}
		g.AddNode(node{id: int64(id), label: label, shape: shape.String()})
	}
	for _, e := range r.Edges() {
		from, to := g.Node(int64(e.Source)), g.Node(int64(e.Target))
		if from == nil || to == nil || e.Source == e.Target {
			return digraph{}, fmt.Errorf("dotviz: edge %d→%d: %w", e.Source, e.Target, ErrBadEdge)
		}
		g.SetEdge(g.NewEdge(from, to))
	}
	return g, nil
}

// Marshal returns the DOT encoding of r under the graph identifier name.
func Marshal(r render.Renderable, name string) ([]byte, error) {
	if name == "" {
		name = DefaultName
	}
	g, err := build(r)
	if err != nil {
		return nil, err
	}
	b, err := dot.Marshal(g, name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("dotviz: marshal %q: %w", name, err)
	}
	return b, nil
}

// Write encodes r to w, followed by a newline.
func Write(w io.Writer, r render.Renderable, name string) error {
	b, err := Marshal(r, name)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("dotviz: write: %w", err)
	}
	return nil
}
