package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessarin/mincut/core"
)

// TestNewEdge_Canonicalizes verifies both orientations collapse to one edge.
func TestNewEdge_Canonicalizes(t *testing.T) {
	e1, err := core.NewEdge(2, 1)
	require.NoError(t, err)
	e2, err := core.NewEdge(1, 2)
	require.NoError(t, err)

	require.Equal(t, e1, e2)
	require.Equal(t, 1, e1.U)
	require.Equal(t, 2, e1.V)
}

// TestNewEdge_RejectsSelfLoop verifies the loop-free invariant.
func TestNewEdge_RejectsSelfLoop(t *testing.T) {
	_, err := core.NewEdge(3, 3)
	require.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestEdge_Other(t *testing.T) {
	e := core.Edge{U: 1, V: 5}

	o, ok := e.Other(1)
	require.True(t, ok)
	require.Equal(t, 5, o)

	o, ok = e.Other(5)
	require.True(t, ok)
	require.Equal(t, 1, o)

	_, ok = e.Other(9)
	require.False(t, ok)
}

// TestGraph_AddEdge_ReversedDuplicate verifies that an edge and its reversed
// pair are the same logical edge.
func TestGraph_AddEdge_ReversedDuplicate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 1))

	require.Equal(t, 1, g.EdgeCount())
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 1))
}

func TestGraph_AddEdge_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge(4, 4), core.ErrSelfLoop)
	require.Equal(t, 0, g.NodeCount())
}

func TestGraph_NodesAndEdges_Sorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(2, 3))
	g.AddNode(7)

	require.Equal(t, []int{1, 2, 3, 7}, g.Nodes())
	require.Equal(t, []core.Edge{{U: 1, V: 3}, {U: 2, V: 3}}, g.Edges())
}

func TestGraph_Neighbors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 3))

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, nbrs)

	_, err = g.Neighbors(42)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestGraph_Clone_Independent verifies the copy shares no state.
func TestGraph_Clone_Independent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))

	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 3))

	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, c.EdgeCount())
	require.False(t, g.HasNode(3))
}
