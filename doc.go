// Package cayley simulates binary state diffusion over graph-structured
// populations and aggregates the resulting occupancy series.
//
// Every node of a network carries a state, empty (0) or filled (1). At each
// discrete time step every node reads the previous snapshot, computes a flip
// probability from a transition rule and flips with that probability; all
// nodes commit together, and the engine keeps the full history.
//
// Packages:
//
//	core/        — thread-safe undirected Graph: ordered node catalog, typed
//	               attributes, symmetric ordered adjacency, capability
//	               interfaces (Network, Generational, Attributed)
//	builder/     — deterministic topologies: CayleyTree, Grid, Path, Cycle,
//	               Star, Complete, Ideology networks, Layered BFS views
//	bfs/         — breadth-first search with hooks, depth layers, cancellation
//	state/       — State, Snapshot and History value types
//	montecarlo/  — Engine, initial policies, NN/TL/EI/Vote rules, parallel
//	               synchronous step
//	density/     — per-generation and total occupancy, per-step tables
//	cmd/cayley/  — run and tree commands driven by a YAML configuration
//
// Quick example:
//
//	tree, _ := builder.CayleyTree(5, 3)
//	eng, _ := montecarlo.New(tree, montecarlo.WithSeed(1))
//	_ = eng.CenterState()
//	for i := 0; i < tree.NodeNumber(); i++ {
//		_, _ = eng.SimulateNN()
//	}
//	d, _ := eng.DensityCalculator(2, eng.Time())
//
// Seeded engines are reproducible: the same seed, network and rule sequence
// give the same history for any worker count.
package cayley
