// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// layered.go — generational view of an arbitrary network by BFS depth.
//
// Contract:
//   • Generation of a node = hop distance from root.
//   • Every node must be reachable from root (else ErrDisconnectedGraph).
//   • The underlying network is not copied; the view is valid as long as
//     its structure does not change.
//
// Complexity:
//   • Time: O(V + E), Space: O(V).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cayley/bfs"
	"github.com/katalvlaran/cayley/core"
)

// LayeredNetwork groups the nodes of a network into BFS generations.
type LayeredNetwork struct {
	core.Network
	root  string
	depth map[string]int
	byGen [][]string
}

var _ core.Generational = (*LayeredNetwork)(nil)

// Layered returns a generational view of net rooted at root, so lattices
// and other non-tree topologies can be aggregated per generation.
func Layered(net core.Network, root string) (*LayeredNetwork, error) {
	if net == nil {
		return nil, fmt.Errorf("%s: nil network: %w", MethodLayered, ErrConstructFailed)
	}
	res, err := bfs.BFS(net, root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodLayered, err)
	}
	if len(res.Order) != net.Len() {
		return nil, fmt.Errorf("%s: %d of %d nodes reachable from %q: %w",
			MethodLayered, len(res.Order), net.Len(), root, ErrDisconnectedGraph)
	}

	return &LayeredNetwork{
		Network: net,
		root:    root,
		depth:   res.Depth,
		byGen:   res.Layers(),
	}, nil
}

// Root returns the generation-0 node.
func (l *LayeredNetwork) Root() string { return l.root }

// Generations returns the deepest BFS layer index.
func (l *LayeredNetwork) Generations() int { return len(l.byGen) - 1 }

// NodesInGeneration returns the IDs at hop distance gen in BFS order.
func (l *LayeredNetwork) NodesInGeneration(gen int) []string {
	if gen < 0 || gen >= len(l.byGen) {
		return []string{}
	}

	return append([]string(nil), l.byGen[gen]...)
}

// Generation returns the hop distance of id from the root.
func (l *LayeredNetwork) Generation(id string) (int, error) {
	d, ok := l.depth[id]
	if !ok {
		return 0, fmt.Errorf("Generation: %q: %w", id, core.ErrUnknownNode)
	}

	return d, nil
}
