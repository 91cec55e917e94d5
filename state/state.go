// Package state defines the per-node binary state and the snapshot and
// history containers the Monte Carlo engine produces.
//
// Snapshots are treated as immutable once committed: the engine builds a
// fresh Snapshot per step and never writes to a published one. Callers
// that need to mutate must Clone first.
package state

import "maps"

// State is the binary condition of a node.
type State uint8

const (
	// Empty is the inactive state (0).
	Empty State = 0
	// Filled is the active state (1).
	Filled State = 1
)

// String returns "0" or "1".
func (s State) String() string {
	if s == Filled {
		return "1"
	}

	return "0"
}

// Flip returns the opposite state.
func (s State) Flip() State { return 1 - s }

// Float returns the state as 0.0 or 1.0 for use in rule formulas.
func (s State) Float() float64 { return float64(s) }

// Snapshot maps every node ID to its state at one time step.
type Snapshot map[string]State

// Fill returns a snapshot assigning s to every id.
func Fill(ids []string, s State) Snapshot {
	snap := make(Snapshot, len(ids))
	for _, id := range ids {
		snap[id] = s
	}

	return snap
}

// Clone returns an independent copy of s.
func (s Snapshot) Clone() Snapshot { return maps.Clone(s) }

// Count returns the number of nodes in state v.
func (s Snapshot) Count(v State) int {
	n := 0
	for _, st := range s {
		if st == v {
			n++
		}
	}

	return n
}

// CountIn returns how many of ids are in state v. Unknown IDs count as
// absent, not empty.
func (s Snapshot) CountIn(ids []string, v State) int {
	n := 0
	for _, id := range ids {
		if st, ok := s[id]; ok && st == v {
			n++
		}
	}

	return n
}

// Diff returns the IDs whose state differs between s and other, in the
// order of ids.
func (s Snapshot) Diff(other Snapshot, ids []string) []string {
	var out []string
	for _, id := range ids {
		if s[id] != other[id] {
			out = append(out, id)
		}
	}

	return out
}

// History is the ordered sequence of snapshots; index = time step.
type History []Snapshot

// Latest returns the newest snapshot, or nil for an empty history.
func (h History) Latest() Snapshot {
	if len(h) == 0 {
		return nil
	}

	return h[len(h)-1]
}

// Steps returns the number of transitions recorded after the initial snapshot.
func (h History) Steps() int {
	if len(h) == 0 {
		return 0
	}

	return len(h) - 1
}
