// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//   - Atomicity: on error the partially built graph is dropped, callers only
//     ever observe complete topologies.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cayley/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately together with a nil graph.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor errors wrapped via %w; branch with errors.Is against
//     builder and core sentinels.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addIndexed inserts n vertices named cfg.idFn(0..n-1) and returns their IDs.
// Complexity: O(n).
func addIndexed(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.Add(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: Add(%s): %w", method, ids[i], err)
		}
	}
	if g.Len() < n {
		// The ID scheme produced duplicates.
		return nil, fmt.Errorf("%s: ID scheme yields %d distinct IDs for n=%d: %w", method, g.Len(), n, ErrConstructFailed)
	}

	return ids, nil
}
