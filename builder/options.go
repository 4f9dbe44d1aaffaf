// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: randomness only via WithSeed.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating builderConfig before use.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the naming function used by index-based constructors (Chain).
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithSymbNumb sets the naming scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("x") → "x0","x1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithCoupling sets the pairwise coupling strength J.
// Panics on NaN or ±Inf.
func WithCoupling(j float64) BuilderOption {
	if math.IsNaN(j) || math.IsInf(j, 0) {
		panic(fmt.Sprintf("builder: WithCoupling(%v)", j))
	}
	return func(c *builderConfig) { c.coupling = j }
}

// WithField sets the external field h. A non-zero field adds one unary
// factor per spin. Panics on NaN or ±Inf.
func WithField(h float64) BuilderOption {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		panic(fmt.Sprintf("builder: WithField(%v)", h))
	}
	return func(c *builderConfig) { c.field = h }
}

// WithDomain relabels the two spin states. Panics on empty or equal labels.
func WithDomain(down, up string) BuilderOption {
	if down == "" || up == "" || down == up {
		panic(fmt.Sprintf("builder: WithDomain(%q, %q)", down, up))
	}
	return func(c *builderConfig) { c.domain = [2]string{down, up} }
}

// WithSeed draws every pairwise coupling as ±J from a seeded source.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
