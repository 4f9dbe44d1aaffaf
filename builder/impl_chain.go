// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVariables).
//   - Adds variables cfg.idFn(0..n-1) with the configured binary domain.
//   - Emits Coupling factors (i-1, i) for i=1..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/fgraph"
)

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds a pairwise chain of n variables.
func Chain(n int) Constructor {
	return func(g *fgraph.Graph, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVariables)
		}

		domain := cfg.domain[:]
		for i := 0; i < n; i++ {
			name := cfg.idFn(i)
			if _, err := g.AddVariable(name, domain); err != nil {
				return fmt.Errorf("%s: AddVariable(%s): %w: %w", methodChain, name, ErrConstructFailed, err)
			}
		}
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			if _, err := g.AddFactor([]string{u, v}, Coupling(cfg.pairCoupling())); err != nil {
				return fmt.Errorf("%s: AddFactor(%s–%s): %w: %w", methodChain, u, v, ErrConstructFailed, err)
			}
		}
		return nil
	}
}
