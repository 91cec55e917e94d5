// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/core"
)

// TestConcurrentLink ensures concurrent Link calls from a hub keep the
// adjacency symmetric and duplicate-free.
func TestConcurrentLink(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	require.NoError(t, g.Add("Hub"))
	for i := 0; i < num; i++ {
		require.NoError(t, g.Add(fmt.Sprintf("V%d", i)))
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2*num)
	wg.Add(2 * num)
	for i := 0; i < num; i++ {
		// Each pair is linked twice from opposite sides.
		go func(id int) {
			defer wg.Done()
			errs <- g.Link("Hub", fmt.Sprintf("V%d", id))
		}(i)
		go func(id int) {
			defer wg.Done()
			errs <- g.Link(fmt.Sprintf("V%d", id), "Hub")
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbrs, err := g.Neighbors("Hub")
	require.NoError(t, err)
	assert.Len(t, nbrs, num)
	assert.Equal(t, num, g.LinkCount())
}

// TestConcurrentReaders runs readers alongside attribute merges.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Add("A"))
	require.NoError(t, g.Add("B"))
	require.NoError(t, g.Link("A", "B"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(r int) {
			defer wg.Done()
			_ = g.Add("A", core.WithRank(r))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.NodeIDs()
			_, _ = g.Neighbors("B")
			_ = g.Links()
		}()
	}
	wg.Wait()
	assert.Equal(t, 2, g.Len())
}
