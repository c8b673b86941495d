package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routefinder/bfs"
	"github.com/katalvlaran/routefinder/builder"
	"github.com/katalvlaran/routefinder/core"
)

// twoIslands builds A—B—C plus X—Y plus the isolated Z.
func twoIslands(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C", "X", "Y", "Z"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("X", "Y", 2))

	return g
}

func TestBFS_OrderDepthParent(t *testing.T) {
	g := twoIslands(t)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, res.Depth)
	assert.Equal(t, "B", res.Parent["C"])
	assert.False(t, res.Reached("X"))

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	_, err = res.PathTo("Z")
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_IgnoresWeights(t *testing.T) {
	// Triangle where the direct edge is heavier: BFS still takes one hop.
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("A", "C", 10))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, path)
}

func TestBFS_Errors(t *testing.T) {
	g := twoIslands(t)

	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(g, "nowhere")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(6))
	require.NoError(t, err)

	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)

	res, err = bfs.BFS(g, "0", bfs.WithFilterNeighbor(func(_, nb string) bool { return nb != "3" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)
}

func TestBFS_OnVisitErrorAndCancel(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	stop := errors.New("stop")
	res, err := bfs.BFS(g, "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "2" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := twoIslands(t)

	assert.Equal(t, [][]string{{"A", "B", "C"}, {"X", "Y"}, {"Z"}}, bfs.Components(g))
	assert.Nil(t, bfs.Components(nil))
	assert.Empty(t, bfs.Components(core.NewGraph()))
}
