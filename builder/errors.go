// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with "%s: ...: %w" (method first).
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidTopology indicates malformed tree parameters
// (generations < 0 or links < 2).
var ErrInvalidTopology = errors.New("builder: invalid topology")

// ErrDisconnectedGraph indicates a construction that left a node without
// neighbors (limited-radius ideology networks) or a node unreachable from
// the root of a layered view.
var ErrDisconnectedGraph = errors.New("builder: disconnected graph")

// ErrUnknownPolicy indicates an unrecognized ideology connection policy.
var ErrUnknownPolicy = errors.New("builder: unknown connection policy")

// ErrInvalidRoster indicates an ideology roster that cannot be wired:
// empty, duplicate names, ranks that are not a permutation of 1..n, or no
// member at the reference ranks.
var ErrInvalidRoster = errors.New("builder: invalid roster")

// ErrConstructFailed indicates that BuildGraph received a nil constructor or
// a constructor could not finish without breaking invariants.
var ErrConstructFailed = errors.New("builder: construction failed")
