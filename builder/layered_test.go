package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/bfs"
	"github.com/katalvlaran/cayley/builder"
	"github.com/katalvlaran/cayley/core"
)

func TestLayeredGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	require.NoError(t, err)

	l, err := builder.Layered(g, builder.GridID(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "1,1", l.Root())
	assert.Equal(t, 2, l.Generations())
	assert.Equal(t, []string{"1,1"}, l.NodesInGeneration(0))
	assert.ElementsMatch(t, []string{"0,1", "1,0", "1,2", "2,1"}, l.NodesInGeneration(1))
	assert.ElementsMatch(t, []string{"0,0", "0,2", "2,0", "2,2"}, l.NodesInGeneration(2))
	assert.Empty(t, l.NodesInGeneration(3))

	d, err := l.Generation("2,2")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	_, err = l.Generation("9,9")
	require.ErrorIs(t, err, core.ErrUnknownNode)

	// the view forwards the structural queries
	assert.Equal(t, 9, l.NodeNumber())
}

func TestLayeredMatchesTree(t *testing.T) {
	tree, err := builder.CayleyTree(3, 3)
	require.NoError(t, err)
	l, err := builder.Layered(tree.Graph, builder.RootID)
	require.NoError(t, err)
	require.Equal(t, tree.Generations(), l.Generations())
	for gen := 0; gen <= tree.Generations(); gen++ {
		assert.Equal(t, tree.NodesInGeneration(gen), l.NodesInGeneration(gen))
	}
}

func TestLayeredErrors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Add("a"))
	require.NoError(t, g.Add("b"))
	require.NoError(t, g.Add("c"))
	require.NoError(t, g.Link("a", "b"))

	_, err := builder.Layered(g, "a")
	require.ErrorIs(t, err, builder.ErrDisconnectedGraph)

	_, err = builder.Layered(g, "z")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, core.ErrUnknownNode)

	_, err = builder.Layered(nil, "a")
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}
