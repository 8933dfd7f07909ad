package topology_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefold/kuramoto/topology"
)

func TestNewGraph_RejectsNonPositive(t *testing.T) {
	_, err := topology.NewGraph(0)
	require.ErrorIs(t, err, topology.ErrInvalidCellCount)
}

func TestAddEdge_EnforcesDegreeBound(t *testing.T) {
	g, err := topology.NewGraph(2)
	require.NoError(t, err)
	for i := 0; i < topology.DMax; i++ {
		require.NoError(t, g.AddEdge(0, 1, 1))
	}
	err = g.AddEdge(0, 1, 1)
	require.ErrorIs(t, err, topology.ErrDegreeExceeded)
}

func TestAddEdge_RejectsOutOfBounds(t *testing.T) {
	g, err := topology.NewGraph(3)
	require.NoError(t, err)
	err = g.AddEdge(5, 1, 1)
	require.ErrorIs(t, err, topology.ErrIndexOutOfBounds)
}

func TestWeightSum_AbsoluteValue(t *testing.T) {
	g, err := topology.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, -3))
	assert.Equal(t, float32(5), g.WeightSum(0))
}

func TestBuildLattice4_EveryCellHasFourNeighbors(t *testing.T) {
	g, err := topology.BuildLattice4(4, 4, nil, nil)
	require.NoError(t, err)
	for i := 0; i < g.CellCount(); i++ {
		assert.Equal(t, 4, g.Count(i))
	}
}

func TestBuildRing_RejectsTooFewCells(t *testing.T) {
	_, err := topology.BuildRing(1, 2, nil, nil)
	require.ErrorIs(t, err, topology.ErrTooFewCells)
}

func TestBuildRing_ClosesTheLoop(t *testing.T) {
	g, err := topology.BuildRing(1, 3, nil, nil)
	require.NoError(t, err)
	idx, _, ok := g.Neighbor(2, 0)
	require.True(t, ok)
	assert.Equal(t, int32(0), idx)
}

func TestBuildRandomSparse_DeterministicAtExtremes(t *testing.T) {
	g, err := topology.BuildRandomSparse(2, 2, 1, nil, nil)
	require.NoError(t, err)
	for i := 0; i < g.CellCount(); i++ {
		assert.Equal(t, g.CellCount()-1, g.Count(i))
	}

	g0, err := topology.BuildRandomSparse(2, 2, 0, nil, nil)
	require.NoError(t, err)
	for i := 0; i < g0.CellCount(); i++ {
		assert.Equal(t, 0, g0.Count(i))
	}
}

func TestBuildRandomSparse_RequiresRngForFractionalP(t *testing.T) {
	_, err := topology.BuildRandomSparse(2, 2, 0.5, nil, nil)
	require.ErrorIs(t, err, topology.ErrNeedRandSource)
}

func TestUniformWeightFn_NilRngFallsBack(t *testing.T) {
	fn := topology.UniformWeightFn(1, 5)
	assert.Equal(t, topology.DefaultEdgeWeight, fn(nil))
	rng := rand.New(rand.NewSource(1))
	w := fn(rng)
	assert.GreaterOrEqual(t, w, float32(1))
	assert.Less(t, w, float32(5))
}
