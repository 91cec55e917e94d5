// Package montecarlo evolves a binary state over any core.Network with a
// discrete-time stochastic rule and keeps the full snapshot history.
//
// A run is:
//
//	eng, _ := montecarlo.New(tree, montecarlo.WithSeed(7))
//	_ = eng.CenterState()              // snapshot 0
//	for i := 0; i < tree.NodeNumber(); i++ {
//		_, _ = eng.SimulateNN()        // snapshot i+1
//	}
//	hist := eng.History()
//
// Every step is synchronous: each node's probability is computed from the
// latest committed snapshot only, one uniform draw u decides the node
// (u ≤ p flips it, in either direction), and all nodes are committed
// together as a fresh snapshot. The draw of node i comes from a PCG stream
// keyed by (per-step seed, i), so for a fixed seed the outcome does not
// depend on evaluation order or on WithWorkers.
//
// Rules: NN (nearest neighbors), TL (generation/lattice density with an
// explicit time index), EI (empty interval) and Vote (per-node beta/phi
// coefficients of ideology networks). Custom rules implement Rule.
//
// An Engine is not safe for concurrent use; the network it reads must not
// change during a run.
package montecarlo
