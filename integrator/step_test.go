package integrator_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefold/kuramoto/field"
	"github.com/wavefold/kuramoto/integrator"
	"github.com/wavefold/kuramoto/meanfield"
	"github.com/wavefold/kuramoto/params"
	"github.com/wavefold/kuramoto/topology"
)

// leftOnlyRing builds a directed graph where cell i's only recorded
// neighbor is its left neighbor (i-1 mod n), weight 1 — spec §8 scenario 6.
func leftOnlyRing(n int) (*topology.Graph, error) {
	g, err := topology.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		left := int32((i - 1 + n) % n)
		if err := g.AddEdge(i, left, 1); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func uniformLayers(n int) []params.LayerParams {
	layers := make([]params.LayerParams, n)
	for i := range layers {
		layers[i] = params.DefaultLayerParams()
	}
	return layers
}

// TestStep_UniformPhaseStaysUniform exercises spec §8 scenario 1: a constant
// field with ω=0 and no noise must be a fixed point under the classic rule.
func TestStep_UniformPhaseStaysUniform(t *testing.T) {
	s, err := field.New(1, 8, 8)
	require.NoError(t, err)
	cursor := s.BackCursor()
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			require.NoError(t, cursor.Set(0, r, c, 1.0))
		}
	}
	s.Swap()

	cfg := integrator.Config{
		Global: params.Params{Dt: 0.05, K0: 1.0, Range: 1, InputMode: params.InjectFrequency},
		Layers: uniformLayers(1),
	}
	src := meanfield.StaticSource{{}}

	for i := 0; i < 100; i++ {
		require.NoError(t, integrator.Step(context.Background(), s, cfg, src))
	}

	front := s.FrontView()
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			v, err := front.At(0, r, c)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, v, 1e-5)
		}
	}
}

// TestStep_WrapsPhaseIntoRange checks the wrap guarantee (spec §8: "θ ∈
// [0, 2π) for all cells, for all steps") holds when a modest drive crosses
// the 2π boundary in one step (spec §4.6's wrap is a single adjustment,
// sufficient only for a physically reasonable dt).
func TestStep_WrapsPhaseIntoRange(t *testing.T) {
	s, err := field.New(1, 1, 1)
	require.NoError(t, err)
	cursor := s.BackCursor()
	require.NoError(t, cursor.Set(0, 0, 0, 6.2))
	s.Swap()
	require.NoError(t, s.SetOmega(0, 0, 0, 2.0))

	cfg := integrator.Config{
		Global: params.Params{Dt: 0.1, K0: 0, Range: 1},
		Layers: uniformLayers(1),
	}
	require.NoError(t, integrator.Step(context.Background(), s, cfg, meanfield.StaticSource{{}}))

	v, err := s.FrontView().At(0, 0, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, float64(v), 0.0)
	assert.Less(t, float64(v), 2*math.Pi)
	assert.InDelta(t, 6.2+0.2-2*math.Pi, v, 1e-5)
}

// TestStep_GraphRingOneStep exercises spec §8 scenario 6: a 1-D ring where
// each cell couples only to its left neighbor.
func TestStep_GraphRingOneStep(t *testing.T) {
	const n = 4
	s, err := field.New(1, 1, n)
	require.NoError(t, err)
	cursor := s.BackCursor()
	for c := 0; c < n; c++ {
		require.NoError(t, cursor.Set(0, 0, c, float32(c)*0.1))
	}
	s.Swap()

	g, err := leftOnlyRing(n)
	require.NoError(t, err)
	s.SetGraph(g)

	layers := uniformLayers(1)
	layers[0].K0 = 1.0
	cfg := integrator.Config{
		Global: params.Params{Dt: 0.01, K0: 1.0, Range: 1, TopologyMode: true},
		Layers: layers,
	}
	before := make([]float32, n)
	frontBefore := s.FrontView()
	for c := 0; c < n; c++ {
		before[c], _ = frontBefore.At(0, 0, c)
	}

	require.NoError(t, integrator.Step(context.Background(), s, cfg, meanfield.StaticSource{{}}))

	frontAfter := s.FrontView()
	for c := 0; c < n; c++ {
		left := before[(c-1+n)%n]
		want := before[c] + 0.01*float32(math.Sin(float64(left-before[c])))
		got, err := frontAfter.At(0, 0, c)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-5)
	}
}
