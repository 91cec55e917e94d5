// Package bfs provides breadth-first search over any core.Network,
// returning hop distances, parent links, visit order and depth layers.
//
// cayley uses it to derive generations for topologies that are not built
// generation-by-generation (lattices, ideology networks, custom graphs): the
// depth of a node from a chosen root is its generation.
//
// Determinism
//
//	core.Network.Neighbors returns neighbors in link creation order and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Links|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(net, "0",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//	layers := res.Layers() // layers[d] = IDs at depth d, in visit order
//
// Errors
//
//   - ErrGraphNil             if the network is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for a node.
//   - Wrapped hook errors from OnVisit, and ctx.Err() on cancellation.
package bfs
