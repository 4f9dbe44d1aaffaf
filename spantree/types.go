// SPDX-License-Identifier: MIT

// Package spantree provides tunable options, error definitions and the
// tree value produced by breadth-first spanning-tree construction.
package spantree

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/factorgraph/fgraph"
)

// Sentinel errors for spanning-tree construction.
var (
	// ErrGraphNil is returned if a nil source is passed.
	ErrGraphNil = errors.New("spantree: graph is nil")

	// ErrUnknownRoot is returned when the root name is not a variable.
	ErrUnknownRoot = errors.New("spantree: unknown root variable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spantree: invalid option supplied")
)

// Source is the read-only graph surface a traversal needs.
// *fgraph.Graph satisfies it.
type Source interface {
	VariableByName(name string) (*fgraph.Variable, bool)
	ItemByID(id fgraph.ID) (fgraph.Item, error)
	NeighborIDs(id fgraph.ID) ([]fgraph.ID, error)
	Len() int
}

// Option configures Build via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// MaxDepth, if > 0, stops discovery beyond this many edges from the root.
	// 0 means no limit.
	MaxDepth int

	// OnDiscover is called once per node, right after it joins the tree.
	OnDiscover func(n *Node)

	// Logger receives debug records; discards by default.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with no depth limit, a no-op hook and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   0,
		OnDiscover: func(*Node) {},
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithMaxDepth limits the tree to nodes at most d edges from the root.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnDiscover registers a callback run for every node in discovery order.
func WithOnDiscover(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithLogger routes traversal debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Node is one vertex of a spanning tree. Name and Kind are copied from the
// graph at discovery time.
type Node struct {
	ID       fgraph.ID
	Name     string
	Kind     fgraph.Kind
	Depth    int
	Parent   *Node // nil only for the root
	Children []*Node
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.Parent == nil }

// Edge is a parent→child link of a Tree, expressed in graph IDs.
type Edge struct {
	Parent fgraph.ID
	Child  fgraph.ID
}

// Tree is a breadth-first spanning tree snapshot.
//   - Root: the node of the root variable.
//   - Nodes: every node in first-discovery order; Nodes[0] == Root.
type Tree struct {
	Root  *Node
	Nodes []*Node

	index map[fgraph.ID]*Node
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.Nodes) }

// Node returns the tree node for graph id, if it was reached.
func (t *Tree) Node(id fgraph.ID) (*Node, bool) {
	n, ok := t.index[id]
	return n, ok
}

// Contains reports whether graph id was reached.
func (t *Tree) Contains(id fgraph.ID) bool {
	_, ok := t.index[id]
	return ok
}

// Edges returns parent→child pairs, grouped by parent in discovery order.
func (t *Tree) Edges() []Edge {
	out := make([]Edge, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		for _, c := range n.Children {
			out = append(out, Edge{Parent: n.ID, Child: c.ID})
		}
	}
	return out
}

// PathTo returns the graph IDs from the root to dest, inclusive.
// Returns an error if dest was not reached.
func (t *Tree) PathTo(dest fgraph.ID) ([]fgraph.ID, error) {
	n, ok := t.index[dest]
	if !ok {
		return nil, fmt.Errorf("spantree: no path to %d", dest)
	}
	path := make([]fgraph.ID, n.Depth+1)
	for i := n.Depth; n != nil; i, n = i-1, n.Parent {
		path[i] = n.ID
	}
	return path, nil
}

// Walk visits nodes depth-first in pre-order, children in discovery order.
// Returning false from fn skips that node's subtree.
func (t *Tree) Walk(fn func(n *Node) bool) {
	if t.Root == nil {
		return
	}
	stack := []*Node{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
}
