// SPDX-License-Identifier: MIT

// Package render exposes the node/edge/label/shape enumeration contract
// consumed by external visualizers.
//
// A Renderable hides how a graph or tree is stored. Renderers only see:
//
//	NodeIDs()  every node, ascending for graphs, discovery order for trees
//	Edges()    variable→factor for graphs, parent→child for trees
//	Label(id)  variable name or synthesized factor label
//	Shape(id)  Circle for variables, Box for factors
package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/factorgraph/fgraph"
	"github.com/katalvlaran/factorgraph/spantree"
)

// ErrUnknownNode is returned by Label and Shape for an ID the view does not contain.
var ErrUnknownNode = errors.New("render: unknown node")

// Shape is the outline a renderer should draw for a node.
type Shape uint8

const (
	// Circle marks a variable.
	Circle Shape = iota
	// Box marks a factor.
	Box
)

// String returns the Graphviz shape name.
func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Box:
		return "box"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// ShapeOf maps a node kind to its shape.
func ShapeOf(k fgraph.Kind) (Shape, error) {
	switch k {
	case fgraph.KindVariable:
		return Circle, nil
	case fgraph.KindFactor:
		return Box, nil
	default:
		return 0, fmt.Errorf("render: kind %s: %w", k, ErrUnknownNode)
	}
}

// Edge is a directed Source→Target pair in graph IDs.
type Edge struct {
	Source fgraph.ID
	Target fgraph.ID
}

// Renderable is the read-only enumeration surface for visualizers.
type Renderable interface {
	NodeIDs() []fgraph.ID
	Edges() []Edge
	Label(id fgraph.ID) (string, error)
	Shape(id fgraph.ID) (Shape, error)
}

// graphView renders a full factor graph.
type graphView struct {
	g *fgraph.Graph
}

// FromGraph returns a Renderable over g. The view reads g lazily, so it
// reflects insertions made after the call. A nil g yields an empty view.
func FromGraph(g *fgraph.Graph) Renderable {
	return graphView{g: g}
}

func (v graphView) NodeIDs() []fgraph.ID {
	if v.g == nil {
		return nil
	}
	return v.g.IDs()
}

// Edges lists variable→factor pairs by variable ID, then incident order.
func (v graphView) Edges() []Edge {
	if v.g == nil {
		return nil
	}
	var out []Edge
	for _, vr := range v.g.Variables() {
		for _, f := range vr.FactorIDs() {
			out = append(out, Edge{Source: vr.ID(), Target: f})
		}
	}
	return out
}

func (v graphView) Label(id fgraph.ID) (string, error) {
	it, err := v.item(id)
	if err != nil {
		return "", err
	}
	return it.Name(), nil
}

func (v graphView) Shape(id fgraph.ID) (Shape, error) {
	it, err := v.item(id)
	if err != nil {
		return 0, err
	}
	return ShapeOf(it.Kind())
}

func (v graphView) item(id fgraph.ID) (fgraph.Item, error) {
	if v.g == nil || int(id) >= v.g.Len() {
		return fgraph.Item{}, fmt.Errorf("render: id %d: %w", id, ErrUnknownNode)
	}
	return v.g.ItemByID(id)
}

// treeView renders a spanning tree snapshot.
type treeView struct {
	t *spantree.Tree
}

// FromTree returns a Renderable over t. A nil t yields an empty view.
func FromTree(t *spantree.Tree) Renderable {
	return treeView{t: t}
}

func (v treeView) NodeIDs() []fgraph.ID {
	if v.t == nil {
		return nil
	}
	out := make([]fgraph.ID, len(v.t.Nodes))
	for i, n := range v.t.Nodes {
		out[i] = n.ID
	}
	return out
}

func (v treeView) Edges() []Edge {
	if v.t == nil {
		return nil
	}
	tes := v.t.Edges()
	out := make([]Edge, len(tes))
	for i, e := range tes {
		out[i] = Edge{Source: e.Parent, Target: e.Child}
	}
	return out
}

func (v treeView) Label(id fgraph.ID) (string, error) {
	n, ok := v.node(id)
	if !ok {
		return "", fmt.Errorf("render: id %d: %w", id, ErrUnknownNode)
	}
	return n.Name, nil
}

func (v treeView) Shape(id fgraph.ID) (Shape, error) {
	n, ok := v.node(id)
	if !ok {
		return 0, fmt.Errorf("render: id %d: %w", id, ErrUnknownNode)
	}
	return ShapeOf(n.Kind)
}

func (v treeView) node(id fgraph.ID) (*spantree.Node, bool) {
	if v.t == nil {
		return nil, false
	}
	return v.t.Node(id)
}
