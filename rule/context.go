package rule

import (
	"github.com/wavefold/kuramoto/kernel"
	"github.com/wavefold/kuramoto/meanfield"
	"github.com/wavefold/kuramoto/reducer"
	"github.com/wavefold/kuramoto/topology"
)

// ThetaAtIndex reads a phase given its linear (layer, row, col) index into
// the full L*R*C field. Plugging in a different implementation is how
// Delayed reuses the same neighbor-walking code as Classic: the default
// reads θ_front, the delayed variant reads a delay ring snapshot instead.
type ThetaAtIndex func(idx int) (float32, error)

// Context carries everything one rule evaluation needs for a single cell.
// It is built once per cell by the integrator; every field not relevant to
// the active rule mode is simply left at its zero value.
type Context struct {
	Rows, Cols      int
	Layer, Row, Col int

	Theta   float32 // θ_i, this cell's current phase
	ThetaAt ThetaAtIndex

	// Neighbors serves the spatial (non-topology) wrapped reads genericSum,
	// harmonicSum, kernelSum and ComputeOrder all need; it is built by the
	// integrator over the same source ThetaAt reads (spec §4.4's reducer
	// primitives, consumed here instead of reimplemented).
	Neighbors reducer.Neighborhood

	K0    float32
	Range int32

	GlobalCoupling bool
	TopologyMode   bool
	Graph          *topology.Graph // full L*R*C adjacency, nil unless configured

	Z meanfield.Z

	LocalOrder float32 // R_i, precomputed by ComputeOrder before Evaluate runs

	Weight kernel.Weight // kernel-weighted rule only
	Sigma2 float32       // kernel-weighted rule only: range = ceil(3*Sigma2)

	HarmonicA float32
	HarmonicB float32
}

func (c Context) cellIndex() int {
	return (c.Layer*c.Rows+c.Row)*c.Cols + c.Col
}
