package delay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefold/kuramoto/delay"
)

func TestNew_RejectsNonPositiveCellCount(t *testing.T) {
	_, err := delay.New(0)
	require.ErrorIs(t, err, delay.ErrInvalidCellCount)
}

func TestPush_RejectsSizeMismatch(t *testing.T) {
	r, err := delay.New(4)
	require.NoError(t, err)
	err = r.Push([]float32{1, 2, 3})
	require.ErrorIs(t, err, delay.ErrSnapshotSizeMismatch)
}

func TestRead_RejectsOutOfRangeDelay(t *testing.T) {
	r, err := delay.New(4)
	require.NoError(t, err)
	_, err = r.Read(0)
	require.ErrorIs(t, err, delay.ErrInvalidDelay)
	_, err = r.Read(delay.RingSize)
	require.ErrorIs(t, err, delay.ErrInvalidDelay)
}

func TestPushRead_RoundTripsThroughCursor(t *testing.T) {
	r, err := delay.New(2)
	require.NoError(t, err)

	snaps := [][]float32{{1, 1}, {2, 2}, {3, 3}}
	for _, s := range snaps {
		require.NoError(t, r.Push(s))
	}
	// cursor has advanced 3 times; delay 1 step back is the most recent push.
	got, err := r.Read(1)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 3}, got)

	got, err = r.Read(2)
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 2}, got)
}

func TestReset_ZeroesAndRewindsCursor(t *testing.T) {
	r, err := delay.New(2)
	require.NoError(t, err)
	require.NoError(t, r.Push([]float32{9, 9}))
	r.Reset()
	assert.Equal(t, 0, r.Cursor())
	got, err := r.Read(delay.RingSize - 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0}, got)
}
