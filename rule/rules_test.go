package rule_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefold/kuramoto/kernel"
	"github.com/wavefold/kuramoto/meanfield"
	"github.com/wavefold/kuramoto/params"
	"github.com/wavefold/kuramoto/reducer"
	"github.com/wavefold/kuramoto/rule"
)

// uniformField builds a ThetaAt function over a rows×cols single-layer grid
// where every cell holds the same phase, so every drive must be zero (spec §8:
// "With ... θ ≡ θ₀ (constant field), θ is a fixed point under every rule").
func uniformField(rows, cols int, theta float32) rule.ThetaAtIndex {
	return func(idx int) (float32, error) { return theta, nil }
}

func baseContext(rows, cols int, theta float32) rule.Context {
	thetaAt := uniformField(rows, cols, theta)
	return rule.Context{
		Rows: rows, Cols: cols,
		Layer: 0, Row: 1, Col: 1,
		Theta:     theta,
		ThetaAt:   thetaAt,
		Neighbors: reducer.NewNeighborhoodFunc(rows, cols, thetaAt),
		K0:        1.5,
		Range:     1,
	}
}

func TestClassic_ConstantFieldIsFixedPoint(t *testing.T) {
	ctx := baseContext(3, 3, 0.7)
	drive, err := rule.Classic(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0, drive, 1e-6)
}

func TestCoherence_ConstantFieldIsFixedPoint(t *testing.T) {
	ctx := baseContext(3, 3, 1.1)
	ctx.LocalOrder = 0.4
	drive, err := rule.Coherence(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0, drive, 1e-6)
}

func TestCurvature_ConstantFieldIsFixedPoint(t *testing.T) {
	ctx := baseContext(3, 3, 2.0)
	drive, err := rule.Curvature(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0, drive, 1e-6)
}

func TestHarmonics_ConstantFieldIsFixedPoint(t *testing.T) {
	ctx := baseContext(3, 3, 0.3)
	ctx.HarmonicA, ctx.HarmonicB = 0.5, 0.25
	drive, err := rule.Harmonics(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0, drive, 1e-6)
}

func TestKernelWeighted_ConstantFieldIsFixedPoint(t *testing.T) {
	ctx := baseContext(9, 9, 0.9)
	lp := params.DefaultLayerParams()
	w, err := kernel.New(lp)
	require.NoError(t, err)
	ctx.Weight = w
	ctx.Sigma2 = lp.Sigma2
	drive, err := rule.KernelWeighted(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0, drive, 1e-5)
}

func TestDelayed_ConstantFieldIsFixedPoint(t *testing.T) {
	ctx := baseContext(3, 3, 1.9)
	drive, err := rule.Delayed(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0, drive, 1e-6)
}

func TestClassic_GlobalCouplingUsesMeanFieldClosedForm(t *testing.T) {
	ctx := baseContext(3, 3, 0)
	ctx.GlobalCoupling = true
	ctx.Z = meanfield.Z{CosAvg: 0.5, SinAvg: 0.5}
	drive, err := rule.Classic(ctx)
	require.NoError(t, err)
	// theta_i = 0: sum = Z_sin*cos(0) - Z_cos*sin(0) = Z_sin = 0.5
	assert.InDelta(t, ctx.K0*0.5, drive, 1e-6)
}

func TestComputeOrder_UniformFieldGivesUnitOrder(t *testing.T) {
	ctx := baseContext(5, 5, math.Pi/4)
	r, err := rule.ComputeOrder(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1, r, 1e-5)
}

func TestEvaluate_RejectsUnknownMode(t *testing.T) {
	ctx := baseContext(3, 3, 0)
	_, err := rule.Evaluate(params.RuleMode(99), ctx)
	require.ErrorIs(t, err, rule.ErrUnknownMode)
}
