// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor (periodic 1D lattice).
//
// Contract:
//   • n ≥ MinCycleNodes (3).
//   • Adds vertices cfg.idFn(0..n-1) and links i — (i+1)%n.
//
// Complexity:
//   • Time: O(n), Space: O(1) extra.
//
// Determinism:
//   • Stable vertex order and link order; every node has degree 2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cayley/core"
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes, ErrTooFewVertices); err != nil {
			return err
		}
		ids, err := addIndexed(g, cfg, MethodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			if err = g.Link(u, v); err != nil {
				return fmt.Errorf("%s: Link(%s,%s): %w", MethodCycle, u, v, err)
			}
		}

		return nil
	}
}
