package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minuscule/core"
	"github.com/katalvlaran/minuscule/dfs"
	"github.com/katalvlaran/minuscule/fault"
)

func directed(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	return core.NewGraph(append([]core.GraphOption{core.WithDirected(true)}, opts...)...)
}

func addEdges(t *testing.T, g *core.Graph, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
}

// diamond is the Boolean lattice of {1,2} drawn top-down.
func diamond(t *testing.T) *core.Graph {
	g := directed(t)
	addEdges(t, g, [2]string{"top", "l"}, [2]string{"top", "r"}, [2]string{"l", "bot"}, [2]string{"r", "bot"})

	return g
}

func TestTopologicalSort_RespectsEdges(t *testing.T) {
	g := diamond(t)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	assert.Equal(t, 0, pos["top"])
	assert.Equal(t, 3, pos["bot"])
	assert.Less(t, pos["l"], pos["bot"])
	assert.Less(t, pos["r"], pos["bot"])
}

func TestTopologicalSort_Deterministic(t *testing.T) {
	first, err := dfs.TopologicalSort(diamond(t))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dfs.TopologicalSort(diamond(t))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := directed(t)
	addEdges(t, g, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.True(t, fault.IsInvariant(err))

	loop := directed(t, core.WithLoops())
	addEdges(t, loop, [2]string{"w", "w"})
	_, err = dfs.TopologicalSort(loop)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSort(core.NewGraph())
	assert.ErrorIs(t, err, dfs.ErrUndirected)
	assert.True(t, fault.IsConfiguration(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(diamond(t), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLevel_LongestPath(t *testing.T) {
	// top → bot directly and through a chain of two: longest path wins.
	g := directed(t)
	addEdges(t, g, [2]string{"top", "bot"}, [2]string{"top", "m1"}, [2]string{"m1", "m2"}, [2]string{"m2", "bot"})
	require.NoError(t, g.AddVertex("lonely"))

	lv, err := dfs.Level(g)
	require.NoError(t, err)
	assert.Len(t, lv.Order, 5)
	assert.Equal(t, map[string]int{"top": 0, "m1": 1, "m2": 2, "bot": 3, "lonely": 0}, lv.Depth)
	assert.Equal(t, 3, lv.MaxDepth)
}

func TestLevel_PropagatesCycle(t *testing.T) {
	g := directed(t)
	addEdges(t, g, [2]string{"a", "b"}, [2]string{"b", "a"})
	lv, err := dfs.Level(g)
	assert.Nil(t, lv)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}
