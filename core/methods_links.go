// File: methods_links.go
// Role: Link lifecycle & neighborhood queries: Link/LinkMany/Complete,
//       Neighbors/HasLink/Links.
// Determinism:
//   - Neighbor lists keep link creation order.
//   - Links() lists each undirected link once, ordered by the insertion
//     position of its earlier endpoint, then by neighbor order.
// Concurrency:
//   - Mutations under mu write lock; validation and mutation happen under
//     the same critical section, so batch operations are all-or-nothing.

package core

import "fmt"

const (
	methodLink     = "Link"
	methodLinkMany = "LinkMany"
	methodComplete = "Complete"
)

// Link adds the symmetric link a—b. Linking an already linked pair is a
// no-op, keeping neighbor lists duplicate-free.
//
// Errors:
//   - ErrEmptyNodeID: if a or b is empty.
//   - ErrLoopNotAllowed: if a == b.
//   - ErrUnknownNode: if either side was never added.
//
// Complexity: O(deg(a)) for the duplicate check.
func (g *Graph) Link(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPairLocked(methodLink, a, b); err != nil {
		return err
	}
	g.linkLocked(a, b)

	return nil
}

// LinkMany links a to every node in bs, in order. All pairs are validated
// before any link is created; on error the graph is unchanged.
//
// Errors: as Link, for the first offending pair.
func (g *Graph) LinkMany(a string, bs ...string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, b := range bs {
		if err := g.checkPairLocked(methodLinkMany, a, b); err != nil {
			return err
		}
	}
	for _, b := range bs {
		g.linkLocked(a, b)
	}

	return nil
}

// Complete links every pair of distinct nodes, so each node ends with
// degree V-1. Pairs are emitted in insertion order (i<j).
// Complexity: O(V²·deg) worst case for the duplicate checks.
func (g *Graph) Complete() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := g.nodeIDsLocked()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			g.linkLocked(ids[i], ids[j])
		}
	}

	return nil
}

// Neighbors returns a copy of the ordered neighbor list of id.
//
// Errors:
//   - ErrUnknownNode: if id was never added.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrUnknownNode)
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// HasLink reports whether a—b exists.
// Complexity: O(deg(a)).
func (g *Graph) HasLink(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasLinkLocked(a, b)
}

// Links returns every undirected link once as an (earlier, later) pair by
// insertion position. Drawing and export collaborators consume this.
// Complexity: O(V+E).
func (g *Graph) Links() [][2]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.nodeIDsLocked()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	out := make([][2]string, 0, g.links)
	for _, u := range ids {
		for _, v := range g.adjacency[u] {
			if pos[v] > pos[u] {
				out = append(out, [2]string{u, v})
			}
		}
	}

	return out
}

// checkPairLocked validates a prospective link a—b. Assumes g.mu is held.
func (g *Graph) checkPairLocked(method, a, b string) error {
	if a == "" || b == "" {
		return fmt.Errorf("%s(%q,%q): %w", method, a, b, ErrEmptyNodeID)
	}
	if a == b {
		return fmt.Errorf("%s(%q,%q): %w", method, a, b, ErrLoopNotAllowed)
	}
	if _, ok := g.adjacency[a]; !ok {
		return fmt.Errorf("%s(%q,%q): %q: %w", method, a, b, a, ErrUnknownNode)
	}
	if _, ok := g.adjacency[b]; !ok {
		return fmt.Errorf("%s(%q,%q): %q: %w", method, a, b, b, ErrUnknownNode)
	}

	return nil
}

// linkLocked appends the mirrored pair unless already linked.
// Assumes g.mu is held and both endpoints exist.
func (g *Graph) linkLocked(a, b string) {
	if g.hasLinkLocked(a, b) {
		return
	}
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	g.links++
}

func (g *Graph) hasLinkLocked(a, b string) bool {
	for _, v := range g.adjacency[a] {
		if v == b {
			return true
		}
	}

	return false
}
