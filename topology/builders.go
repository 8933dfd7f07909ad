package topology

import (
	"fmt"
	"math/rand"
)

// BuildLattice4 builds the toroidal 4-neighbor lattice topology: each cell
// (r,c) connects to its left/right/up/down neighbors with periodic wrap on
// both axes, mirroring the field's own wrapped boundary (spec §4.4 "Wrap").
// Edges are added in both directions so WeightSum sees every neighbor.
//
// Contract: rows ≥ 1 and cols ≥ 1 (else ErrTooFewCells). Edge order is
// deterministic: for each (r,c) row-major, emit right, left, down, up.
func BuildLattice4(rows, cols int, weightFn WeightFn, rng *rand.Rand) (*Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("topology: BuildLattice4: rows=%d cols=%d: %w", rows, cols, ErrTooFewCells)
	}
	if weightFn == nil {
		weightFn = DefaultWeightFn
	}
	g, err := NewGraph(rows * cols)
	if err != nil {
		return nil, fmt.Errorf("topology: BuildLattice4: %w", err)
	}
	idx := func(r, c int) int32 {
		return int32(((r%rows+rows)%rows)*cols + (c%cols+cols)%cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := int(idx(r, c))
			for _, d := range [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
				n := idx(r+d[0], c+d[1])
				if err := g.AddEdge(i, n, weightFn(rng)); err != nil {
					return nil, fmt.Errorf("topology: BuildLattice4: AddEdge(%d→%d): %w", i, n, err)
				}
			}
		}
	}
	return g, nil
}

// BuildRing builds a single cycle through every cell in row-major order:
// cell i connects to (i+1) mod cellCount and back, grounded on the
// teacher's Cycle(n) constructor generalized from named vertices to linear
// cell indices.
//
// Contract: rows*cols ≥ 3 (else ErrTooFewCells).
func BuildRing(rows, cols int, weightFn WeightFn, rng *rand.Rand) (*Graph, error) {
	n := rows * cols
	if n < 3 {
		return nil, fmt.Errorf("topology: BuildRing: n=%d: %w", n, ErrTooFewCells)
	}
	if weightFn == nil {
		weightFn = DefaultWeightFn
	}
	g, err := NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("topology: BuildRing: %w", err)
	}
	for i := 0; i < n; i++ {
		next := int32((i + 1) % n)
		w := weightFn(rng)
		if err := g.AddEdge(i, next, w); err != nil {
			return nil, fmt.Errorf("topology: BuildRing: AddEdge(%d→%d): %w", i, next, err)
		}
		if err := g.AddEdge(int(next), int32(i), w); err != nil {
			return nil, fmt.Errorf("topology: BuildRing: AddEdge(%d→%d): %w", next, i, err)
		}
	}
	return g, nil
}

// BuildRandomSparse builds an Erdős–Rényi-style graph over rows*cols cells:
// each unordered pair {i,j}, i<j, is connected independently with
// probability p, grounded on the teacher's RandomSparse(n, p) constructor.
// Edges beyond a cell's DMax-th are silently dropped rather than failing
// the whole build, since dense regions of a large random graph routinely
// exceed DMax for non-trivial p.
//
// Contract: rows*cols ≥ 1 (else ErrTooFewCells); 0 ≤ p ≤ 1 (else
// ErrInvalidProbability); rng required unless p is 0 or 1.
func BuildRandomSparse(rows, cols int, p float32, weightFn WeightFn, rng *rand.Rand) (*Graph, error) {
	n := rows * cols
	if n < 1 {
		return nil, fmt.Errorf("topology: BuildRandomSparse: n=%d: %w", n, ErrTooFewCells)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("topology: BuildRandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}
	if rng == nil && p > 0 && p < 1 {
		return nil, ErrNeedRandSource
	}
	if weightFn == nil {
		weightFn = DefaultWeightFn
	}
	g, err := NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("topology: BuildRandomSparse: %w", err)
	}
	include := func() bool {
		if rng == nil {
			return p == 1
		}
		return rng.Float64() <= float64(p)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !include() {
				continue
			}
			w := weightFn(rng)
			_ = g.AddEdge(i, int32(j), w)
			_ = g.AddEdge(j, int32(i), w)
		}
	}
	return g, nil
}

// ReplicateAcrossLayers builds an L*R*C-cell graph by repeating a
// single-layer (R*C cell) graph L times, offsetting every neighbor index by
// its own layer's base so neighbor indices become valid linear indices into
// the full (layer, row, col) field (spec §3: "neighbors[i,j] ... linear
// index into θ", where θ spans all L layers). single must have been built
// over exactly rows*cols cells.
func ReplicateAcrossLayers(single *Graph, layers, rows, cols int) (*Graph, error) {
	perLayer := rows * cols
	if single.CellCount() != perLayer {
		return nil, fmt.Errorf("topology: ReplicateAcrossLayers: single graph has %d cells, want %d", single.CellCount(), perLayer)
	}
	out, err := NewGraph(layers * perLayer)
	if err != nil {
		return nil, fmt.Errorf("topology: ReplicateAcrossLayers: %w", err)
	}
	for layer := 0; layer < layers; layer++ {
		base := layer * perLayer
		for i := 0; i < perLayer; i++ {
			n := single.Count(i)
			for j := 0; j < n; j++ {
				idx, weight, _ := single.Neighbor(i, j)
				if err := out.AddEdge(base+i, idx+int32(base), weight); err != nil {
					return nil, fmt.Errorf("topology: ReplicateAcrossLayers: AddEdge: %w", err)
				}
			}
		}
	}
	return out, nil
}
