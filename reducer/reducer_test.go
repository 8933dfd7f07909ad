package reducer_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefold/kuramoto/field"
	"github.com/wavefold/kuramoto/reducer"
)

func TestNeighborGlobal_WrapsBothAxes(t *testing.T) {
	s, err := field.New(1, 3, 3)
	require.NoError(t, err)
	cursor := s.BackCursor()
	require.NoError(t, cursor.Set(0, 2, 2, 7))
	s.Swap()

	n := reducer.NewNeighborhood(s.FrontView())
	// (-1,-1) from (0,0) wraps to (2,2) on a 3x3 grid.
	v, err := n.NeighborGlobal(0, 0, 0, -1, -1)
	require.NoError(t, err)
	assert.Equal(t, float32(7), v)
}

func TestNeighborLocal_RejectsOutsideHalo(t *testing.T) {
	s, err := field.New(1, 32, 32)
	require.NoError(t, err)
	n := reducer.NewNeighborhood(s.FrontView())
	_, err = n.NeighborLocal(0, 10, 10, reducer.Halo+1, 0)
	require.ErrorIs(t, err, reducer.ErrOutsideHalo)
}

func TestNeighborAny_FallsBackBeyondHalo(t *testing.T) {
	s, err := field.New(1, 32, 32)
	require.NoError(t, err)
	cursor := s.BackCursor()
	require.NoError(t, cursor.Set(0, 1, 5, 3))
	s.Swap()

	n := reducer.NewNeighborhood(s.FrontView())
	v, err := n.NeighborAny(0, 10, 5, 0, -(reducer.Halo + 1))
	require.NoError(t, err)
	assert.Equal(t, float32(3), v)
}

func TestNewNeighborhoodFunc_ReadsFlatIndex(t *testing.T) {
	snapshot := []float32{0, 1, 2, 3, 4, 5, 6, 7, 8}
	n := reducer.NewNeighborhoodFunc(3, 3, func(idx int) (float32, error) {
		return snapshot[idx], nil
	})
	v, err := n.NeighborGlobal(0, 0, 0, -1, -1)
	require.NoError(t, err)
	assert.Equal(t, float32(8), v)
}

func TestDispatch_VisitsEveryCellExactlyOnce(t *testing.T) {
	var count int64
	err := reducer.Dispatch(context.Background(), 2, 20, 5, func(layer, row, col int) error {
		atomic.AddInt64(&count, 1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2*20*5), count)
}

func TestDispatch_PropagatesFirstError(t *testing.T) {
	boom := assert.AnError
	err := reducer.Dispatch(context.Background(), 1, 4, 4, func(layer, row, col int) error {
		if row == 2 && col == 2 {
			return boom
		}
		return nil
	})
	require.Error(t, err)
}
