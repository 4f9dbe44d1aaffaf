// SPDX-License-Identifier: MIT

package fgraph

import (
	"fmt"
	"log/slog"
)

// Option configures a Graph before first use.
type Option func(g *Graph)

// WithLogger routes debug records for insertions to l.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// WithCapacity preallocates room for n nodes (variables plus factors).
// It panics on negative n; a capacity hint has no meaningful negative value.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("fgraph: WithCapacity(%d): capacity must be non-negative", n))
	}
	return func(g *Graph) {
		g.capacity = n
	}
}
