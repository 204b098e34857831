package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessarin/mincut/builder"
	"github.com/tessarin/mincut/convert"
	"github.com/tessarin/mincut/core"
)

func TestPath(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}, g.Edges())

	g, err = builder.Path(1)
	require.NoError(t, err)
	require.Equal(t, 1, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())

	_, err = builder.Path(0)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestCycle(t *testing.T) {
	g, err := builder.Cycle(4)
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 1, V: 4}, {U: 2, V: 3}, {U: 3, V: 4}}, g.Edges())

	_, err = builder.Cycle(2)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestComplete(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 10, g.EdgeCount())
}

func TestStar(t *testing.T) {
	g, err := builder.Star(5)
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())
	deg, err := g.Degree(1)
	require.NoError(t, err)
	require.Equal(t, 4, deg)
}

func TestBowtie(t *testing.T) {
	g := builder.Bowtie()
	require.Equal(t, 6, g.NodeCount())
	require.Equal(t, 7, g.EdgeCount())
	require.True(t, g.HasEdge(3, 4), "bridge edge must exist")
	require.True(t, convert.IsConnected(g))
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.RandomSparse(0, 0.5, nil)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.RandomSparse(5, -0.1, nil)
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.RandomSparse(5, 1.5, nil)
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.RandomSparse(6, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.EdgeCount())

	g, err = builder.RandomSparse(6, 1, nil)
	require.NoError(t, err)
	require.Equal(t, 15, g.EdgeCount())
}

// TestRandomSparse_Deterministic verifies identical seeds reproduce the graph.
func TestRandomSparse_Deterministic(t *testing.T) {
	g1, err := builder.RandomSparse(20, 0.3, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	g2, err := builder.RandomSparse(20, 0.3, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	require.Equal(t, g1.Edges(), g2.Edges())
}

func TestDisjoint(t *testing.T) {
	c1, err := builder.Cycle(3)
	require.NoError(t, err)
	other := core.NewGraph()
	require.NoError(t, other.AddEdge(10, 11))

	g := builder.Disjoint(c1, other)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 4, g.EdgeCount())
	require.False(t, convert.IsConnected(g))
}
