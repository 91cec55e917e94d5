// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ MinCompleteNodes (1).
//   • Adds cfg.idFn(0..n-1) and links every unordered pair once.
//
// Complexity:
//   • Time: O(n²), Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cayley/core"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes, ErrTooFewVertices); err != nil {
			return err
		}
		ids, err := addIndexed(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = g.Link(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: Link(%s,%s): %w", MethodComplete, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
