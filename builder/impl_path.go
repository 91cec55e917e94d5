// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// impl_path.go — implementation of Path(n) constructor (open 1D lattice).
//
// Contract:
//   • n ≥ MinPathNodes (2).
//   • Adds vertices cfg.idFn(0..n-1) and links i — i+1 for i = 0..n-2.
//
// Complexity:
//   • Time: O(n), Space: O(1) extra.
//
// Determinism:
//   • Stable vertex order (ascending index) and link order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cayley/core"
)

// Path returns a Constructor that builds the path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes, ErrTooFewVertices); err != nil {
			return err
		}
		ids, err := addIndexed(g, cfg, MethodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = g.Link(ids[i], ids[i+1]); err != nil {
				return fmt.Errorf("%s: Link(%s,%s): %w", MethodPath, ids[i], ids[i+1], err)
			}
		}

		return nil
	}
}
