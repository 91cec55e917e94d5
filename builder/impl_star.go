// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ MinStarNodes (2): one hub plus n-1 leaves.
//   • Hub is cfg.idFn(0) ("0" with the default scheme), leaves cfg.idFn(1..n-1).
//
// Complexity:
//   • Time: O(n), Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cayley/core"
)

// Star returns a Constructor that builds a star with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes, ErrTooFewVertices); err != nil {
			return err
		}
		ids, err := addIndexed(g, cfg, MethodStar, n)
		if err != nil {
			return err
		}
		if err = g.LinkMany(ids[0], ids[1:]...); err != nil {
			return fmt.Errorf("%s: hub %s: %w", MethodStar, ids[0], err)
		}

		return nil
	}
}
