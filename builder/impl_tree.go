// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// impl_tree.go — rooted Cayley tree constructor and its generational view.
//
// Contract:
//   • generations ≥ 0, links ≥ 2 (else ErrInvalidTopology).
//   • Root "0" is generation 0 and has `links` children; every other
//     non-leaf node has links-1 children, so every interior node has degree
//     `links`. Leaves sit at generation `generations`.
//   • IDs are sequential decimal strings in breadth-first creation order.
//   • Each node carries core.FeatureGeneration.
//
// Complexity:
//   • Time: O(N), Space: O(N), N = TreeSize(generations, links).
//
// Determinism:
//   • Identical inputs ⇒ identical IDs, attributes and neighbor order
//     (parent first, then children in creation order).

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/cayley/core"
)

// MaxTreeNodes bounds the size of a single tree.
const MaxTreeNodes = 1 << 26

// TreeSize returns the node count of a Cayley tree:
// 1 + links·((links-1)^g − 1)/(links-2) for links > 2 and 1 + 2g for links == 2.
// Returns -1 for parameters outside the domain or a size above MaxTreeNodes.
// Complexity: O(generations).
func TreeSize(generations, links int) int {
	if generations < MinTreeGenerations || links < MinTreeLinks {
		return -1
	}
	size, layer := 1, links
	for g := 1; g <= generations; g++ {
		size += layer
		if size > MaxTreeNodes {
			return -1
		}
		layer *= links - 1
	}

	return size
}

// Tree is a Cayley tree: a core.Graph plus its generation index.
// It implements core.Generational.
type Tree struct {
	*core.Graph
	generations int
	links       int
	byGen       [][]string
}

var _ core.Generational = (*Tree)(nil)

// CayleyTree builds a rooted Cayley tree of the given depth and branching.
// Construction is atomic: on error no tree is returned.
// ID-scheme options are ignored; trees always use decimal IDs.
func CayleyTree(generations, links int, opts ...BuilderOption) (*Tree, error) {
	if err := validateTree(generations, links); err != nil {
		return nil, err
	}
	size := TreeSize(generations, links)
	if size < 0 {
		return nil, fmt.Errorf("%s: generations=%d links=%d exceeds %d nodes: %w",
			MethodCayleyTree, generations, links, MaxTreeNodes, ErrInvalidTopology)
	}

	g, err := BuildGraph([]core.GraphOption{core.WithCapacity(size)}, opts, TreeLayout(generations, links))
	if err != nil {
		return nil, err
	}

	t := &Tree{
		Graph:       g,
		generations: generations,
		links:       links,
		byGen:       make([][]string, generations+1),
	}
	for id := range g.Nodes() {
		a, _ := g.Attrs(id)
		t.byGen[a.Generation] = append(t.byGen[a.Generation], id)
	}

	return t, nil
}

// TreeLayout returns a Constructor that wires a Cayley tree into an empty
// graph. CayleyTree wraps it with the generation index; use it directly to
// compose a tree with other constructors.
func TreeLayout(generations, links int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateTree(generations, links); err != nil {
			return err
		}
		if g.Len() != 0 {
			return fmt.Errorf("%s: graph already has %d nodes: %w", MethodCayleyTree, g.Len(), ErrConstructFailed)
		}

		if err := g.Add(RootID, core.WithGeneration(0)); err != nil {
			return fmt.Errorf("%s: %w", MethodCayleyTree, err)
		}
		frontier := []string{RootID}
		next := 1
		for gen := 1; gen <= generations; gen++ {
			children := make([]string, 0, len(frontier)*links)
			for _, parent := range frontier {
				fanout := links - 1
				if parent == RootID {
					fanout = links
				}
				for c := 0; c < fanout; c++ {
					id := strconv.Itoa(next)
					next++
					if err := g.Add(id, core.WithGeneration(gen)); err != nil {
						return fmt.Errorf("%s: Add(%s): %w", MethodCayleyTree, id, err)
					}
					if err := g.Link(parent, id); err != nil {
						return fmt.Errorf("%s: Link(%s,%s): %w", MethodCayleyTree, parent, id, err)
					}
					children = append(children, id)
				}
			}
			frontier = children
		}

		return nil
	}
}

// Generations returns the tree depth (index of the leaf generation).
func (t *Tree) Generations() int { return t.generations }

// Branching returns the degree of the root and of every interior node.
func (t *Tree) Branching() int { return t.links }

// NodesInGeneration returns the IDs at depth gen in creation order.
// Out-of-range generations yield an empty slice.
func (t *Tree) NodesInGeneration(gen int) []string {
	if gen < 0 || gen >= len(t.byGen) {
		return []string{}
	}

	return append([]string(nil), t.byGen[gen]...)
}

// NearestNeighbors returns the parent (if any) followed by the children of id.
func (t *Tree) NearestNeighbors(id string) ([]string, error) {
	nbrs, err := t.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("NearestNeighbors: %w", err)
	}

	return nbrs, nil
}

// Generation returns the depth of id.
func (t *Tree) Generation(id string) (int, error) {
	a, err := t.Attrs(id)
	if err != nil {
		return 0, fmt.Errorf("Generation: %w", err)
	}

	return a.Generation, nil
}
