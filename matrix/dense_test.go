package matrix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlane_Validates(t *testing.T) {
	_, err := NewPlane(0, 4, 4)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	p, err := NewPlane(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Layers())
	assert.Equal(t, 3, p.Rows())
	assert.Equal(t, 4, p.Cols())
	assert.Equal(t, 24, p.Len())
}

func TestPlane_AtSet_RowMajor(t *testing.T) {
	p, err := NewPlane(2, 2, 3)
	require.NoError(t, err)

	require.NoError(t, p.Set(1, 1, 2, 7.5))
	got, err := p.At(1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(7.5), got)

	// layer 0 must be untouched
	zero, err := p.At(0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(0), zero)
}

func TestPlane_OutOfBounds(t *testing.T) {
	p, err := NewPlane(1, 2, 2)
	require.NoError(t, err)

	_, err = p.At(0, 2, 0)
	assert.True(t, errors.Is(err, ErrIndexOutOfBounds))

	err = p.Set(0, 0, -1, 1)
	assert.True(t, errors.Is(err, ErrIndexOutOfBounds))
}

func TestPlane_CloneIsIndependent(t *testing.T) {
	p, err := NewPlane(1, 2, 2)
	require.NoError(t, err)
	require.NoError(t, p.Set(0, 0, 0, 1))

	cl := p.Clone()
	require.NoError(t, cl.Set(0, 0, 0, 99))

	orig, _ := p.At(0, 0, 0)
	cloned, _ := cl.At(0, 0, 0)
	assert.Equal(t, float32(1), orig)
	assert.Equal(t, float32(99), cloned)
}

func TestPlane_Fill(t *testing.T) {
	p, err := NewPlane(1, 2, 2)
	require.NoError(t, err)
	p.Fill(3.25)
	for _, v := range p.Raw() {
		assert.Equal(t, float32(3.25), v)
	}
}
