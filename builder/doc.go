// Package builder constructs the topologies cayley simulates on. Every
// constructor produces a core.Graph honoring the core invariants (symmetric
// ordered adjacency, no self loops), deterministically for equal inputs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:  func(g *core.Graph, cfg builderConfig) error.
//     – BuildGraph:   fresh graph + resolved options + constructors in order;
//     on any error the partially built graph is discarded.
//   - Generic producers (Constructor factories):
//     – Path(n), Cycle(n):  1D lattices, open and periodic.
//     – Grid(rows, cols):    2D square lattice, IDs "r,c".
//     – Star(n):             hub "0" plus n-1 leaves.
//     – Complete(n):         K_n.
//   - Generational topologies:
//     – CayleyTree(generations, links): rooted Cayley tree (*Tree), decimal
//     IDs in creation order, generation attribute per node.
//     – Layered(net, root):  generation view of any network by BFS depth.
//   - Ideology networks:
//     – Ideology(members, policy, opts...): linear / limited / complete
//     member networks with per-node beta/phi coefficients.
//     – LoadRoster(r):       default roster CSV reader.
//   - Configuration primitives (BuilderOption):
//     – WithIDScheme / WithPrefixIDs / WithAlphanumericIDs: vertex ID schemes.
//     – WithScale / WithEpsilon / WithRadius / WithCenterRanks: ideology knobs.
//
// Guarantees:
//
//   - All-or-nothing construction: a builder either returns a complete
//     topology or an error, never a partially wired graph.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Sentinel errors (errors.Is) wrapped with "<Method>: ..." context.
package builder
