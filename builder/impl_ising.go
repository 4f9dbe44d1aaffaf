// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_ising.go — implementation of IsingGrid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVariables).
//   • Adds spins "r,c" in row-major order with the configured binary domain.
//   • For each (r,c) emits a Coupling factor to the right neighbour, then
//     to the bottom neighbour, where they exist.
//   • If the field is non-zero, then emits one Field factor per spin in
//     row-major order.
//   • Couplings are ±J when seeded (WithSeed), otherwise J.
//
// Complexity:
//   • Time: O(rows·cols) variables + O(rows·cols) factors.
//
// Determinism:
//   • Stable ID order: all spins, then pairwise factors, then unary factors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/fgraph"
)

const (
	methodIsingGrid = "IsingGrid"
	minGridDim      = 1
)

// IsingGrid returns a Constructor that builds a rows×cols Ising model.
func IsingGrid(rows, cols int) Constructor {
	return func(g *fgraph.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodIsingGrid, rows, cols, minGridDim, ErrTooFewVariables)
		}

		domain := cfg.domain[:]
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				name := gridName(r, c)
				if _, err := g.AddVariable(name, domain); err != nil {
					return fmt.Errorf("%s: AddVariable(%s): %w: %w", methodIsingGrid, name, ErrConstructFailed, err)
				}
			}
		}

		pair := func(u, v string) error {
			if _, err := g.AddFactor([]string{u, v}, Coupling(cfg.pairCoupling())); err != nil {
				return fmt.Errorf("%s: AddFactor(%s–%s): %w: %w", methodIsingGrid, u, v, ErrConstructFailed, err)
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridName(r, c)
				if c+1 < cols {
					if err := pair(u, gridName(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := pair(u, gridName(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		if cfg.field == 0 {
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridName(r, c)
				if _, err := g.AddFactor([]string{u}, Field(cfg.field)); err != nil {
					return fmt.Errorf("%s: AddFactor(%s): %w: %w", methodIsingGrid, u, ErrConstructFailed, err)
				}
			}
		}
		return nil
	}
}
