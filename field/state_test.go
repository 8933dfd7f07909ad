package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefold/kuramoto/field"
)

func TestNew_RejectsInvalidShape(t *testing.T) {
	_, err := field.New(1, 0, 4)
	require.ErrorIs(t, err, field.ErrInvalidShape)
}

func TestSwap_ExchangesFrontAndBack(t *testing.T) {
	s, err := field.New(1, 2, 2)
	require.NoError(t, err)

	back := s.BackCursor()
	require.NoError(t, back.Set(0, 0, 0, 1.5))

	s.Swap()

	front := s.FrontView()
	v, err := front.At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), v)
}

func TestCheckFinite_DetectsNaN(t *testing.T) {
	s, err := field.New(1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, err)
	back := s.BackCursor()
	require.NoError(t, back.Set(0, 0, 0, float32(math.NaN())))
	s.Swap()
	err = s.CheckFinite()
	require.ErrorIs(t, err, field.ErrNonFinite)
}

func TestSetOmega_VisibleThroughOmegaView(t *testing.T) {
	s, err := field.New(1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, s.SetOmega(0, 0, 0, 2.0))
	v, err := s.OmegaView().At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(2.0), v)
}

func TestResize_PreservesShapeOnSuccess(t *testing.T) {
	s, err := field.New(1, 2, 2)
	require.NoError(t, err)
	require.NoError(t, s.Resize(2, 3, 3))
	assert.Equal(t, 2, s.Layers())
	assert.Equal(t, 3, s.Rows())
	assert.Equal(t, 3, s.Cols())
}

func TestGraph_DefaultsToNil(t *testing.T) {
	s, err := field.New(1, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, s.Graph())
}
