// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn   ("0","1","2",...)
//   • coupling = 1.0           (ferromagnetic)
//   • field    = 0.0           (no unary factors)
//   • domain   = {"-1","+1"}   (index 0 is spin down)
//   • rng      = nil           (uniform couplings unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	coupling float64
	field    float64
	domain   [2]string
	// rng, when set, draws each pairwise coupling as ±coupling (±J spin glass).
	rng *rand.Rand
}

const (
	defaultCoupling = 1.0
	defaultField    = 0.0
	defaultDown     = "-1"
	defaultUp       = "+1"
)

// newBuilderConfig applies opts in order over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		coupling: defaultCoupling,
		field:    defaultField,
		domain:   [2]string{defaultDown, defaultUp},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// pairCoupling returns the coupling for the next pairwise factor.
func (c builderConfig) pairCoupling() float64 {
	if c.rng == nil || c.rng.Intn(2) == 1 {
		return c.coupling
	}
	return -c.coupling
}
