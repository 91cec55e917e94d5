// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-order enumeration and ordered neighbor lists.
//   - Validate symmetric linking, loop/unknown-node rejection and
//     all-or-nothing batch linking.

package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// newABCD returns a graph with nodes A, B, C, D and no links.
func newABCD(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{NodeA, NodeB, NodeC, NodeD} {
		require.NoError(t, g.Add(id))
	}

	return g
}

func TestGraph_AddIsIdempotent(t *testing.T) {
	g := newABCD(t)
	require.NoError(t, g.Link(NodeA, NodeB))

	// Re-adding with new attributes merges them without touching adjacency or order.
	require.NoError(t, g.Add(NodeA, core.WithRank(7)))
	require.NoError(t, g.Add(NodeA, core.WithIdeology(0.25)))

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []string{NodeA, NodeB, NodeC, NodeD}, g.NodeIDs())
	nbrs, err := g.Neighbors(NodeA)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeB}, nbrs)

	attrs, err := g.Attrs(NodeA)
	require.NoError(t, err)
	assert.True(t, attrs.Has(core.FeatureRank))
	assert.True(t, attrs.Has(core.FeatureIdeology))
	assert.False(t, attrs.Has(core.FeatureGeneration))
	assert.Equal(t, 7, attrs.Rank)
	assert.InDelta(t, 0.25, attrs.Ideology, 1e-12)

	// Overwrite an existing key.
	require.NoError(t, g.Add(NodeA, core.WithRank(9)))
	attrs, _ = g.Attrs(NodeA)
	assert.Equal(t, 9, attrs.Rank)
}

func TestGraph_AddEmptyID(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.Add(""), core.ErrEmptyNodeID)
	assert.Equal(t, 0, g.Len())
}

func TestGraph_NodesRestartable(t *testing.T) {
	g := newABCD(t)
	seq := g.Nodes()

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{NodeA, NodeB, NodeC, NodeD}, first)

	// Early break must stop the sequence.
	var seen []string
	for id := range g.Nodes() {
		seen = append(seen, id)
		if id == NodeB {
			break
		}
	}
	assert.Equal(t, []string{NodeA, NodeB}, seen)
}

func TestGraph_LinkSymmetric(t *testing.T) {
	g := newABCD(t)
	require.NoError(t, g.Link(NodeA, NodeB))
	require.NoError(t, g.Link(NodeC, NodeA))

	assert.True(t, g.HasLink(NodeA, NodeB))
	assert.True(t, g.HasLink(NodeB, NodeA))
	assert.True(t, g.HasLink(NodeA, NodeC))

	nbrs, err := g.Neighbors(NodeA)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeB, NodeC}, nbrs, "neighbor order follows link creation")

	// Duplicate link is a no-op.
	require.NoError(t, g.Link(NodeB, NodeA))
	assert.Equal(t, 2, g.LinkCount())
	d, err := g.Degree(NodeA)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestGraph_LinkErrors(t *testing.T) {
	g := newABCD(t)

	tests := []struct {
		name string
		a, b string
		want error
	}{
		{"unknown right", NodeA, NodeX, core.ErrUnknownNode},
		{"unknown left", NodeX, NodeA, core.ErrUnknownNode},
		{"loop", NodeA, NodeA, core.ErrLoopNotAllowed},
		{"empty", "", NodeA, core.ErrEmptyNodeID},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, g.Link(tc.a, tc.b), tc.want)
		})
	}
	assert.Equal(t, 0, g.LinkCount())
}

func TestGraph_LinkManyAllOrNothing(t *testing.T) {
	g := newABCD(t)

	err := g.LinkMany(NodeA, NodeB, NodeX, NodeC)
	require.ErrorIs(t, err, core.ErrUnknownNode)
	assert.Equal(t, 0, g.LinkCount(), "no partial links on failure")

	require.NoError(t, g.LinkMany(NodeA, NodeB, NodeC, NodeD))
	nbrs, _ := g.Neighbors(NodeA)
	assert.Equal(t, []string{NodeB, NodeC, NodeD}, nbrs)
	for _, id := range []string{NodeB, NodeC, NodeD} {
		back, _ := g.Neighbors(id)
		assert.Equal(t, []string{NodeA}, back)
	}
}

func TestGraph_Complete(t *testing.T) {
	g := newABCD(t)
	require.NoError(t, g.Link(NodeA, NodeB))
	require.NoError(t, g.Complete())

	assert.Equal(t, 6, g.LinkCount())
	for _, id := range g.NodeIDs() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, g.Len()-1, d)
	}
	assert.Equal(t, [][2]string{
		{NodeA, NodeB}, {NodeA, NodeC}, {NodeA, NodeD},
		{NodeB, NodeC}, {NodeB, NodeD}, {NodeC, NodeD},
	}, g.Links())
}

func TestGraph_Feature(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Add("s1", core.WithIdeology(0.1)))
	require.NoError(t, g.Add("s2", core.WithIdeology(0.9)))

	m, err := g.Feature(core.FeatureIdeology)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"s1": 0.1, "s2": 0.9}, m)

	_, err = g.Feature(core.FeatureRank)
	require.ErrorIs(t, err, core.ErrMissingAttribute)

	require.NoError(t, g.Add("s3"))
	_, err = g.Feature(core.FeatureIdeology)
	require.ErrorIs(t, err, core.ErrMissingAttribute)
	assert.Contains(t, err.Error(), `"s3"`)
}

func TestGraph_NodeNumberCapacity(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(10))
	assert.Equal(t, 10, g.NodeNumber())
	assert.Equal(t, 0, g.Len())

	small := core.NewGraph(core.WithCapacity(1))
	require.NoError(t, small.Add(NodeA))
	require.NoError(t, small.Add(NodeB))
	assert.Equal(t, 2, small.NodeNumber(), "count wins when it exceeds capacity")

	assert.Panics(t, func() { core.WithCapacity(-1) })
}

func TestGraph_QueriesOnUnknownNode(t *testing.T) {
	g := newABCD(t)

	_, err := g.Neighbors(NodeX)
	require.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = g.Degree(NodeX)
	require.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = g.Attrs(NodeX)
	require.ErrorIs(t, err, core.ErrUnknownNode)
	assert.False(t, g.HasNode(NodeX))
	assert.False(t, g.HasNode(""))
}

func TestGraph_NeighborsIsCopy(t *testing.T) {
	g := newABCD(t)
	require.NoError(t, g.LinkMany(NodeA, NodeB, NodeC))

	nbrs, _ := g.Neighbors(NodeA)
	nbrs[0] = NodeX

	again, _ := g.Neighbors(NodeA)
	assert.Equal(t, []string{NodeB, NodeC}, again)
}

func TestGraph_Stats(t *testing.T) {
	g := newABCD(t)
	require.NoError(t, g.LinkMany(NodeA, NodeB, NodeC))

	s := g.Stats()
	assert.Equal(t, 4, s.NodeCount)
	assert.Equal(t, 2, s.LinkCount)
	assert.Equal(t, 1, s.Isolated)
	assert.Equal(t, 2, s.MaxDegree)
	assert.InDelta(t, 1.0, s.MeanDegree, 1e-12)
}

func TestFeature_String(t *testing.T) {
	assert.Equal(t, "generation", core.FeatureGeneration.String())
	assert.Equal(t, "phi", core.FeaturePhi.String())
	assert.Equal(t, "unknown", core.Feature(0).String())

	var a core.Attributes
	_, ok := a.Value(core.FeatureBeta)
	assert.False(t, ok)
}
