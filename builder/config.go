// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn      ("0","1","2",...)
//   • scale       = DefaultScale     (1)
//   • epsilon     = DefaultEpsilon   (0.01)
//   • radius      = DefaultRadius    (0.07)
//   • centerRanks = nil              (median ranks of the roster)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn

	// Ideology coefficient knobs: coefficient = 1/(scale·(|η|+epsilon)) + 1.
	scale   float64
	epsilon float64
	// radius is the inclusive ideology distance of the limited policy.
	radius float64
	// centerRanks selects the reference members whose mean ideology is the
	// center; empty means the median rank(s).
	centerRanks []int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		scale:   DefaultScale,
		epsilon: DefaultEpsilon,
		radius:  DefaultRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
