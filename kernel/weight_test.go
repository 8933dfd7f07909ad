package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefold/kuramoto/kernel"
	"github.com/wavefold/kuramoto/params"
)

func TestNew_RejectsBadSigmaOrder(t *testing.T) {
	lp := params.DefaultLayerParams()
	lp.Sigma1, lp.Sigma2 = 4.0, 1.5
	_, err := kernel.New(lp)
	require.ErrorIs(t, err, kernel.ErrInvalidSigmaOrder)
}

func TestNew_RejectsUnknownShape(t *testing.T) {
	lp := params.DefaultLayerParams()
	lp.Shape = params.ShapeKind(99)
	_, err := kernel.New(lp)
	require.ErrorIs(t, err, kernel.ErrUnknownShape)
}

func TestIsotropic_IsRadialAndSymmetric(t *testing.T) {
	w := kernel.Isotropic(1.5, 4.0, 0.8)
	assert.InDelta(t, w(3, 4), w(4, 3), 1e-5, "radial: only r matters, not orientation")
	assert.Equal(t, w(2, -3), w(-2, 3), "isotropic is symmetric under negation")
}

func TestIsotropic_PeaksAtOrigin(t *testing.T) {
	w := kernel.Isotropic(1.5, 4.0, 0.8)
	center := w(0, 0)
	near := w(1, 0)
	far := w(10, 0)
	assert.Greater(t, center, near)
	assert.Greater(t, near, far)
}

func TestAsymmetric_BreaksSymmetry(t *testing.T) {
	w := kernel.Asymmetric(1.5, 4.0, 0.8, 0.6, 0)
	assert.NotEqual(t, w(3, 1), w(-3, -1), "nonzero asymmetry must break w(Δ)=w(−Δ)")
}

func TestStep_PiecewiseBands(t *testing.T) {
	w := kernel.Step(1.0, 2.0, 0.5)
	assert.Equal(t, float32(1), w(0, 0))
	assert.Equal(t, float32(-0.5), w(1.5, 0))
	assert.Equal(t, float32(0), w(5, 0))
}

func TestMultiRing_FirstBandStartsAtOrigin(t *testing.T) {
	rings := [params.MaxRings]params.RingSpec{
		{Width: 0.5, Weight: 1.0},
		{Width: 1.0, Weight: -0.5},
	}
	w := kernel.MultiRing(1.0, 4.0, rings)
	// At r=0 we're inside the first band (0, 0.5*4] with positive weight.
	assert.Greater(t, w(0, 0), float32(0))
}

func TestGabor_ModulatesEnvelopeByCarrier(t *testing.T) {
	w := kernel.Gabor(1.5, 4.0, 0.8, 1.0, 0, float32(math.Pi))
	// phi=pi flips the carrier sign relative to phi=0 at the same offset.
	w0 := kernel.Gabor(1.5, 4.0, 0.8, 1.0, 0, 0)
	assert.InDelta(t, w(2, 0), -w0(2, 0), 1e-4)
}

func TestNew_ComposeMixesTwoShapes(t *testing.T) {
	lp := params.DefaultLayerParams()
	lp.Shape = params.ShapeIsotropic
	lp.ComposeEnabled = true
	lp.ComposeSecondaryShape = params.ShapeStep
	lp.ComposeMix = 1 // r=1 -> pure secondary (s)
	w, err := kernel.New(lp)
	require.NoError(t, err)
	step := kernel.Step(lp.Sigma1, lp.Sigma2, lp.Beta)
	assert.InDelta(t, step(0, 0), w(0, 0), 1e-5)
}

func TestNew_ComposeMixZeroIsPrimary(t *testing.T) {
	lp := params.DefaultLayerParams()
	lp.Shape = params.ShapeIsotropic
	lp.ComposeEnabled = true
	lp.ComposeSecondaryShape = params.ShapeStep
	lp.ComposeMix = 0 // r=0 -> pure primary (p)
	w, err := kernel.New(lp)
	require.NoError(t, err)
	iso := kernel.Isotropic(lp.Sigma1, lp.Sigma2, lp.Beta)
	assert.InDelta(t, iso(1, 1), w(1, 1), 1e-5)
}
