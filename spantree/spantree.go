// SPDX-License-Identifier: MIT

// Package spantree builds breadth-first spanning trees over an fgraph.Graph.
//
// The walk starts at a named variable and follows incidence edges
// (variable→factor, factor→variable) in each node's natural neighbor order.
// Every reachable ID appears exactly once; disconnected components are
// absent. The parent of a node is whichever dequeued node discovered it
// first, so ties are broken by neighbor order, never by ID magnitude.
package spantree

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/fgraph"
)

// walker encapsulates mutable traversal state.
type walker struct {
	src     Source
	opts    Options
	queue   []*Node
	visited map[fgraph.ID]struct{}
	tree    *Tree
}

// Build returns the breadth-first spanning tree of src rooted at the
// variable called root.
// Returns ErrGraphNil, ErrUnknownRoot or ErrOptionViolation for invalid
// input, and an error wrapping fgraph.ErrInconsistent if a neighbor ID
// cannot be resolved mid-walk. No partial tree is returned on error.
//
// Complexity: O(V + E) over the reachable component.
func Build(src Source, root string, opts ...Option) (*Tree, error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rv, ok := src.VariableByName(root)
	if !ok {
		return nil, fmt.Errorf("Build(%q): %w", root, ErrUnknownRoot)
	}

	n := src.Len()
	w := &walker{
		src:     src,
		opts:    o,
		queue:   make([]*Node, 0, n),
		visited: make(map[fgraph.ID]struct{}, n),
		tree: &Tree{
			Nodes: make([]*Node, 0, n),
			index: make(map[fgraph.ID]*Node, n),
		},
	}

	rootNode, err := w.discover(rv.ID(), nil)
	if err != nil {
		return nil, err
	}
	w.tree.Root = rootNode

	if err := w.loop(); err != nil {
		return nil, err
	}
	o.Logger.Debug("spanning tree built", "root", root, "nodes", w.tree.Len())

	return w.tree, nil
}

// discover creates the tree node for id under parent, marks it visited
// and enqueues it.
func (w *walker) discover(id fgraph.ID, parent *Node) (*Node, error) {
	it, err := w.src.ItemByID(id)
	if err != nil {
		return nil, fmt.Errorf("spantree: resolve %d: %w", id, err)
	}
	node := &Node{
		ID:     id,
		Name:   it.Name(),
		Kind:   it.Kind(),
		Parent: parent,
	}
	if parent != nil {
		node.Depth = parent.Depth + 1
		parent.Children = append(parent.Children, node)
	}

	w.visited[id] = struct{}{}
	w.tree.Nodes = append(w.tree.Nodes, node)
	w.tree.index[id] = node
	w.queue = append(w.queue, node)
	w.opts.OnDiscover(node)

	return node, nil
}

// loop drains the FIFO queue.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.expand(cur); err != nil {
			return err
		}
	}
	return nil
}

// expand discovers every unvisited neighbor of cur in natural order.
func (w *walker) expand(cur *Node) error {
	if w.opts.MaxDepth > 0 && cur.Depth >= w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.src.NeighborIDs(cur.ID)
	if err != nil {
		return fmt.Errorf("spantree: neighbors of %d: %w", cur.ID, err)
	}
	for _, nbr := range nbrs {
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		if _, err := w.discover(nbr, cur); err != nil {
			return err
		}
	}
	return nil
}
