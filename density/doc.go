// Package density aggregates state snapshots into occupancy counts: total
// filled/empty nodes and filled nodes per generation of a generational
// network.
//
// Generation-aware functions require a core.Generational network and fail
// with ErrUnsupportedTopology otherwise; the capability is checked here,
// at the boundary, so callers never type-switch on topology kinds.
package density
