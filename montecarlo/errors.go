package montecarlo

import (
	"errors"

	"github.com/katalvlaran/cayley/density"
)

var (
	// ErrNilNetwork indicates New was called without a network.
	ErrNilNetwork = errors.New("montecarlo: nil network")

	// ErrNotInitialized indicates a step before any initial-state policy
	// was applied (or after Clear).
	ErrNotInitialized = errors.New("montecarlo: initial state not selected")

	// ErrBadTimestep indicates a time index outside the retained history
	// or a negative TL time index.
	ErrBadTimestep = errors.New("montecarlo: time step out of range")

	// ErrInvalidParams indicates negative or non-finite rule parameters.
	ErrInvalidParams = errors.New("montecarlo: invalid parameters")

	// ErrUnknownPolicy indicates an unrecognized initial-state policy.
	ErrUnknownPolicy = errors.New("montecarlo: unknown initial policy")

	// ErrNoHistory indicates aggregation before any snapshot was recorded.
	ErrNoHistory = density.ErrNoHistory
)
