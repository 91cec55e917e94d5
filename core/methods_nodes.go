// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes()/NodeIDs() enumerate in first-insertion order; re-adding an
//     existing node never moves it.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"fmt"
	"iter"
)

// Add inserts a node or, when id already exists, merges the given
// attributes into its record (later options overwrite earlier keys).
// Adjacency and node order are never touched by Add.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(len(opts)).
func (g *Graph) Add(id string, opts ...AttrOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	var n *Node
	if v, ok := g.nodes.Get(id); ok {
		n = v.(*Node)
	} else {
		n = &Node{ID: id}
		g.nodes.Put(id, n)
		g.adjacency[id] = nil
	}
	for _, opt := range opts {
		opt(&n.Attrs)
	}

	return nil
}

// HasNode reports whether id is in the catalog (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes.Get(id)

	return ok
}

// Attrs returns a copy of the attribute record of id.
//
// Errors:
//   - ErrUnknownNode: if id was never added.
func (g *Graph) Attrs(id string) (Attributes, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.nodes.Get(id)
	if !ok {
		return Attributes{}, fmt.Errorf("Attrs(%q): %w", id, ErrUnknownNode)
	}

	return v.(*Node).Attrs, nil
}

// NodeIDs returns all node IDs in insertion order. The slice is a fresh copy.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeIDsLocked()
}

// Nodes returns a lazy, finite sequence of node IDs in insertion order.
// Each range over the returned sequence restarts from the first node and
// observes the catalog as of the start of that range.
//
//	for id := range g.Nodes() { ... }
func (g *Graph) Nodes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range g.NodeIDs() {
			if !yield(id) {
				return
			}
		}
	}
}

// Feature returns id → value of the given attribute for every node.
//
// Errors:
//   - ErrMissingAttribute: if any node lacks f; the first offending node
//     (in insertion order) is named in the message.
//
// Complexity: O(V).
func (g *Graph) Feature(f Feature) (map[string]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]float64, g.nodes.Size())
	it := g.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*Node)
		val, ok := n.Attrs.Value(f)
		if !ok {
			return nil, fmt.Errorf("Feature(%s): node %q: %w", f, n.ID, ErrMissingAttribute)
		}
		out[n.ID] = val
	}

	return out, nil
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrUnknownNode: if id was never added.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrUnknownNode)
	}

	return len(nbrs), nil
}

// nodeIDsLocked assumes g.mu is held.
func (g *Graph) nodeIDsLocked() []string {
	out := make([]string, 0, g.nodes.Size())
	it := g.nodes.Iterator()
	for it.Next() {
		out = append(out, it.Key().(string))
	}

	return out
}
