// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Attributes, Feature, Graph, options, sentinel errors and NewGraph.
// Concurrency:
//   - Graph is guarded by a single sync.RWMutex (mu); the catalog and the
//     adjacency map always change together, so one lock keeps them consistent.

package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrUnknownNode indicates an operation referenced a node that was never added.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMissingAttribute indicates an attribute query over a node set where
	// at least one node lacks the attribute.
	ErrMissingAttribute = errors.New("core: missing attribute")
)

// Feature names one attribute of a node record. Features are bit flags so
// an Attributes value can carry its presence mask in a single field.
type Feature uint8

const (
	// FeatureGeneration is the depth of a node in a generational topology (root = 0).
	FeatureGeneration Feature = 1 << iota
	// FeatureIdeology is the ideology score of a member of an ideology network.
	FeatureIdeology
	// FeatureRank is the ideology rank (1-based) of a member.
	FeatureRank
	// FeatureBeta is the per-node fill amplification coefficient.
	FeatureBeta
	// FeaturePhi is the per-node empty amplification coefficient.
	FeaturePhi
)

// String returns the lowercase attribute name.
func (f Feature) String() string {
	switch f {
	case FeatureGeneration:
		return "generation"
	case FeatureIdeology:
		return "ideology"
	case FeatureRank:
		return "rank"
	case FeatureBeta:
		return "beta"
	case FeaturePhi:
		return "phi"
	default:
		return "unknown"
	}
}

// Attributes is the open attribute record of a node. Only the fields whose
// Feature bit is set are meaningful; zero values of unset fields are not
// distinguishable from real zeros without Has.
type Attributes struct {
	Generation int
	Ideology   float64
	Rank       int
	Beta       float64
	Phi        float64

	set Feature // presence mask
}

// Has reports whether the feature was assigned.
func (a Attributes) Has(f Feature) bool { return a.set&f == f }

// Value returns the feature as float64 and whether it is present.
func (a Attributes) Value(f Feature) (float64, bool) {
	if !a.Has(f) {
		return 0, false
	}
	switch f {
	case FeatureGeneration:
		return float64(a.Generation), true
	case FeatureIdeology:
		return a.Ideology, true
	case FeatureRank:
		return float64(a.Rank), true
	case FeatureBeta:
		return a.Beta, true
	case FeaturePhi:
		return a.Phi, true
	}

	return 0, false
}

// AttrOption sets or overwrites one attribute of a node record.
type AttrOption func(*Attributes)

// WithGeneration sets the generation index.
func WithGeneration(gen int) AttrOption {
	return func(a *Attributes) { a.Generation, a.set = gen, a.set|FeatureGeneration }
}

// WithIdeology sets the ideology score.
func WithIdeology(score float64) AttrOption {
	return func(a *Attributes) { a.Ideology, a.set = score, a.set|FeatureIdeology }
}

// WithRank sets the ideology rank.
func WithRank(rank int) AttrOption {
	return func(a *Attributes) { a.Rank, a.set = rank, a.set|FeatureRank }
}

// WithBeta sets the per-node fill coefficient.
func WithBeta(beta float64) AttrOption {
	return func(a *Attributes) { a.Beta, a.set = beta, a.set|FeatureBeta }
}

// WithPhi sets the per-node empty coefficient.
func WithPhi(phi float64) AttrOption {
	return func(a *Attributes) { a.Phi, a.set = phi, a.set|FeaturePhi }
}

// Node is a read-only view of one catalog entry.
type Node struct {
	ID    string
	Attrs Attributes
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity declares the logical node count of the graph, used by
// topologies defined by a closed-form size. NodeNumber reports
// max(capacity, actual count). Panics on a negative capacity.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}
	return func(g *Graph) { g.capacity = n }
}

// Graph is the core undirected simple graph.
//
// nodes maps ID → *Node and preserves first-insertion order; adjacency maps
// ID → ordered neighbor IDs and always holds an entry (possibly empty) for
// every node in the catalog.
type Graph struct {
	mu sync.RWMutex

	capacity  int
	nodes     *linkedhashmap.Map
	adjacency map[string][]string
	links     int
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	NodeCount  int
	LinkCount  int
	Capacity   int
	Isolated   int // nodes with degree 0
	MaxDegree  int
	MeanDegree float64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     linkedhashmap.New(),
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
