package simulation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefold/kuramoto/params"
	"github.com/wavefold/kuramoto/simulation"
)

func newSim(t *testing.T, rows, cols int) *simulation.Simulation {
	t.Helper()
	p := params.DefaultParams()
	p.Rows, p.Cols = int32(rows), int32(cols)
	sim, err := simulation.New(simulation.WithParams(p))
	require.NoError(t, err)
	return sim
}

func TestWriteTheta_SeedsFieldAndDelayRing(t *testing.T) {
	sim := newSim(t, 2, 2)
	initial := []float32{0.1, 0.2, 0.3, 0.4}
	require.NoError(t, sim.WriteTheta(initial))

	view := sim.ThetaView()
	for i, want := range initial {
		got, err := view.At(0, i/2, i%2)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestWriteTheta_RejectsSizeMismatch(t *testing.T) {
	sim := newSim(t, 2, 2)
	err := sim.WriteTheta([]float32{1, 2})
	require.ErrorIs(t, err, simulation.ErrFieldSizeMismatch)
}

func TestNew_GlobalK0PropagatesToDefaultLayer(t *testing.T) {
	p := params.DefaultParams()
	p.Rows, p.Cols = 2, 2
	p.K0 = 2.0
	sim, err := simulation.New(simulation.WithParams(p))
	require.NoError(t, err)

	lp, err := sim.Store().Layer(0)
	require.NoError(t, err)
	assert.Equal(t, float32(2.0), lp.K0)
}

func TestStep_AdvancesWithoutError(t *testing.T) {
	sim := newSim(t, 4, 4)
	require.NoError(t, sim.WriteTheta(make([]float32, 16)))
	for i := 0; i < 5; i++ {
		require.NoError(t, sim.Step(context.Background()))
	}
}

func TestSnapshotRestore_RoundTripsState(t *testing.T) {
	sim := newSim(t, 3, 3)
	initial := make([]float32, 9)
	for i := range initial {
		initial[i] = float32(i) * 0.1
	}
	require.NoError(t, sim.WriteTheta(initial))
	require.NoError(t, sim.Step(context.Background()))

	snap := sim.Snapshot()
	assert.NotEqual(t, snap.ID.String(), "")

	sim2, err := simulation.New()
	require.NoError(t, err)
	require.NoError(t, sim2.Restore(snap))

	v1 := sim.ThetaView()
	v2 := sim2.ThetaView()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a, err := v1.At(0, i, j)
			require.NoError(t, err)
			b, err := v2.At(0, i, j)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	}
}
