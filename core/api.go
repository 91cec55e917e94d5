// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Capability interfaces consumed by the engine and aggregation layers,
//       plus thin read-only getters on Graph.
// Policy:
//   - No algorithms here.
//   - Every getter takes the read lock and returns copies, never live maps.

package core

import "iter"

// Network is the structural contract the Monte Carlo engine consumes:
// node enumeration, neighbor lookup and node count. The engine never
// mutates a Network.
type Network interface {
	// Nodes enumerates node IDs lazily in insertion order.
	Nodes() iter.Seq[string]
	// NodeIDs returns node IDs in insertion order.
	NodeIDs() []string
	// Neighbors returns the ordered neighbor IDs of id.
	Neighbors(id string) ([]string, error)
	// NodeNumber returns the logical capacity of the network.
	NodeNumber() int
	// Len returns the number of nodes actually present.
	Len() int
}

// Generational is a Network whose nodes are grouped by generation
// (depth from a root). Only tree-like topologies implement it; callers
// that need generation grouping check for it at the boundary.
type Generational interface {
	Network
	// Generations returns the deepest generation index (root = 0).
	Generations() int
	// NodesInGeneration returns the IDs whose generation equals gen,
	// in insertion order; empty when gen is out of range.
	NodesInGeneration(gen int) []string
}

// Attributed is a Network exposing per-node attribute records.
type Attributed interface {
	Network
	Attrs(id string) (Attributes, error)
}

var (
	_ Network    = (*Graph)(nil)
	_ Attributed = (*Graph)(nil)
)

// NodeNumber returns the logical capacity: the declared WithCapacity value
// when it exceeds the actual node count, otherwise the count.
// Complexity: O(1).
func (g *Graph) NodeNumber() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if n := g.nodes.Size(); n > g.capacity {
		return n
	}

	return g.capacity
}

// Len returns the number of nodes in the catalog.
// Complexity: O(1).
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Size()
}

// LinkCount returns the number of undirected links.
// Complexity: O(1).
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.links
}

// Stats produces a deterministic snapshot of counts and degree figures.
// Complexity: O(V).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: g.nodes.Size(),
		LinkCount: g.links,
		Capacity:  g.capacity,
	}
	var total int
	for _, nbrs := range g.adjacency {
		d := len(nbrs)
		total += d
		if d == 0 {
			stats.Isolated++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}
	if stats.NodeCount > 0 {
		stats.MeanDegree = float64(total) / float64(stats.NodeCount)
	}

	return &stats
}
