// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "slices"

// BuilderOption customizes a constructor by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil. Tree and grid builders use fixed schemes and ignore it.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithScale sets the coefficient scale k (> 0) of ideology networks.
// Panics if k <= 0.
func WithScale(k float64) BuilderOption {
	if k <= 0 {
		panic("builder: WithScale(k<=0)")
	}
	return func(c *builderConfig) { c.scale = k }
}

// WithEpsilon sets the stabilizing ε (>= 0) of the coefficient formula.
// Panics if eps < 0.
func WithEpsilon(eps float64) BuilderOption {
	if eps < 0 {
		panic("builder: WithEpsilon(eps<0)")
	}
	return func(c *builderConfig) { c.epsilon = eps }
}

// WithRadius sets the ideology radius (>= 0) of the limited policy.
// Panics if r < 0.
func WithRadius(r float64) BuilderOption {
	if r < 0 {
		panic("builder: WithRadius(r<0)")
	}
	return func(c *builderConfig) { c.radius = r }
}

// WithCenterRanks selects the reference ranks whose mean ideology is the
// network center. Panics when called without ranks.
func WithCenterRanks(ranks ...int) BuilderOption {
	if len(ranks) == 0 {
		panic("builder: WithCenterRanks()")
	}
	ranks = slices.Clone(ranks)
	return func(c *builderConfig) { c.centerRanks = ranks }
}
