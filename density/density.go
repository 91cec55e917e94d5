package density

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cayley/core"
	"github.com/katalvlaran/cayley/state"
)

var (
	// ErrUnsupportedTopology indicates a generation query on a network
	// without generation grouping.
	ErrUnsupportedTopology = errors.New("density: network is not generational")

	// ErrNoHistory indicates aggregation over a history with no snapshots.
	ErrNoHistory = errors.New("density: no history")
)

// Generation returns the number of filled nodes of generation gen in snap.
// Out-of-range generations count 0.
func Generation(net core.Network, gen int, snap state.Snapshot) (int, error) {
	gn, ok := net.(core.Generational)
	if !ok {
		return 0, fmt.Errorf("Generation(%d): %T: %w", gen, net, ErrUnsupportedTopology)
	}

	return snap.CountIn(gn.NodesInGeneration(gen), state.Filled), nil
}

// Zeros returns the number of empty nodes in snap.
func Zeros(snap state.Snapshot) int { return snap.Count(state.Empty) }

// Ones returns the number of filled nodes in snap.
func Ones(snap state.Snapshot) int { return snap.Count(state.Filled) }
