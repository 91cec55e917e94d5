// Package core provides the thread-safe in-memory Graph that every topology
// in cayley is built on, together with the capability interfaces the Monte
// Carlo engine and the aggregation layer consume.
//
// A Graph G = (V,E) here is deliberately narrow:
//
//   - Undirected, unweighted, simple: no self-loops, no parallel links.
//   - Insertion-ordered node catalog: Nodes()/NodeIDs() always enumerate in
//     the order nodes were first added, so positional exports are stable.
//   - Ordered, duplicate-free neighbor lists: Neighbors(id) returns neighbors
//     in the order the links were created.
//   - Typed, open attribute record per node (Attributes) with a presence
//     mask, so topology-specific fields (generation, ideology, rank, beta,
//     phi) stay checkable.
//   - Logical capacity (WithCapacity) that may exceed the number of nodes
//     actually inserted; NodeNumber() reports it.
//
// Invariants (enforced by every mutator):
//
//	adjacency is symmetric:   v ∈ N(u)  ⇔  u ∈ N(v)
//	every neighbor exists:    v ∈ N(u)  ⇒  v ∈ V
//	no self loops:            u ∉ N(u)
//
// Core methods:
//
//	// Node lifecycle
//	Add(id string, opts ...AttrOption) error    // O(1), idempotent, merges attributes
//	HasNode(id string) bool                     // O(1)
//	Attrs(id string) (Attributes, error)        // O(1)
//
//	// Links
//	Link(a, b string) error                     // O(deg)
//	LinkMany(a string, bs ...string) error      // all-or-nothing
//	Complete() error                            // O(V²)
//
//	// Queries
//	Nodes() iter.Seq[string]                    // lazy, restartable, insertion order
//	NodeIDs() []string                          // O(V)
//	Neighbors(id string) ([]string, error)      // O(deg), copy
//	Feature(f Feature) (map[string]float64, error)
//	Links() [][2]string                         // O(V+E), stable
//
// Capability interfaces:
//
//	Network       node enumeration, neighbor lookup, node count
//	Generational  Network + generation grouping (trees, layered views)
//	Attributed    Network + per-node attribute lookup (ideology networks)
//
// Errors:
//
//	ErrEmptyNodeID       – zero-length node ID
//	ErrUnknownNode       – link or query referencing an absent node
//	ErrLoopNotAllowed    – Link(a, a)
//	ErrMissingAttribute  – Feature(f) on a node set where some node lacks f
package core
