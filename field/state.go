package field

import (
	"fmt"
	"math"
	"sync"

	"github.com/wavefold/kuramoto/delay"
	"github.com/wavefold/kuramoto/matrix"
	"github.com/wavefold/kuramoto/params"
	"github.com/wavefold/kuramoto/topology"
)

// State owns every per-cell numeric array the lattice needs: the
// double-buffered phase field, ω, local order R, the input mask, the delay
// ring, and (when topology mode is active) the graph adjacency tables
// (spec §4.2, §3).
//
// Locking follows the teacher's core.Graph split-lock idiom: one RWMutex
// (muSwap) guards only the front/back *matrix.Plane pointers, since that is
// the one piece of state actually contended between a step's many worker
// goroutines (readers, via FrontView) and the orchestrator (the lone
// writer, via Swap). ω, R, the input mask, and the graph are set once per
// resize/initialization and read far more than written, so a second lock
// (muAux) covers only those swaps; in steady state callers never block on
// either.
type State struct {
	muSwap sync.RWMutex
	front  *matrix.Plane
	back   *matrix.Plane

	muAux     sync.RWMutex
	omega     *matrix.Plane
	order     *matrix.Plane
	inputMask *matrix.Plane
	graph     *topology.Graph

	delayRing *delay.Ring

	layers, rows, cols int
}

// New allocates a State for the given shape, zero-initialized, with a
// RingSize-deep delay ring (spec §3 "K = 32").
func New(layers, rows, cols int) (*State, error) {
	if layers > params.MaxLayers {
		return nil, fmt.Errorf("field: New: %w: layers=%d exceeds %d", ErrInvalidShape, layers, params.MaxLayers)
	}
	front, err := matrix.NewPlane(layers, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("field: New: %w: %v", ErrInvalidShape, err)
	}
	back, err := matrix.NewPlane(layers, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("field: New: %w: %v", ErrInvalidShape, err)
	}
	omega, err := matrix.NewPlane(layers, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("field: New: %w: %v", ErrInvalidShape, err)
	}
	order, err := matrix.NewPlane(layers, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("field: New: %w: %v", ErrInvalidShape, err)
	}
	mask, err := matrix.NewPlane(layers, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("field: New: %w: %v", ErrInvalidShape, err)
	}
	ring, err := delay.New(layers * rows * cols)
	if err != nil {
		return nil, fmt.Errorf("field: New: %w", err)
	}
	return &State{
		front: front, back: back,
		omega: omega, order: order, inputMask: mask,
		delayRing: ring,
		layers:    layers, rows: rows, cols: cols,
	}, nil
}

// Layers, Rows, Cols report the field's shape.
func (s *State) Layers() int { return s.layers }
func (s *State) Rows() int   { return s.rows }
func (s *State) Cols() int   { return s.cols }

// FrontView returns a stable read-only snapshot of θ_front for the
// duration of one step.
func (s *State) FrontView() ThetaView {
	s.muSwap.RLock()
	defer s.muSwap.RUnlock()
	return ThetaView{plane: s.front}
}

// BackCursor returns a write handle onto θ_back for the integrator. Many
// goroutines may hold it concurrently as long as each writes disjoint cells.
func (s *State) BackCursor() WriteCursor {
	s.muSwap.RLock()
	defer s.muSwap.RUnlock()
	return WriteCursor{plane: s.back}
}

// Swap exchanges front and back, the only operation that does so (spec
// §4.2). It is atomic with respect to any in-flight FrontView/BackCursor
// snapshots taken before the swap: those snapshots keep referencing the
// plane they captured, never one the other side of a concurrent swap.
func (s *State) Swap() {
	s.muSwap.Lock()
	defer s.muSwap.Unlock()
	s.front, s.back = s.back, s.front
}

// OmegaView returns a read-only view of the intrinsic frequency array.
func (s *State) OmegaView() ScalarView {
	s.muAux.RLock()
	defer s.muAux.RUnlock()
	return ScalarView{plane: s.omega}
}

// SetOmega overwrites ω at (layer, row, col); called only by the external
// initializer (spec §3: "Written only by the external initializer").
func (s *State) SetOmega(l, row, col int, v float32) error {
	s.muAux.Lock()
	defer s.muAux.Unlock()
	return s.omega.Set(l, row, col, v)
}

// OrderView returns a read-only view of the local order array R.
func (s *State) OrderView() ScalarView {
	s.muAux.RLock()
	defer s.muAux.RUnlock()
	return ScalarView{plane: s.order}
}

// OrderCursor returns a write handle onto R, for the integrator to record
// one value per cell per step.
func (s *State) OrderCursor() WriteCursor {
	s.muAux.RLock()
	defer s.muAux.RUnlock()
	return WriteCursor{plane: s.order}
}

// InputMaskView returns a read-only view of the per-cell input drive
// pattern (spec §3 Params: "per-cell input drive pattern").
func (s *State) InputMaskView() ScalarView {
	s.muAux.RLock()
	defer s.muAux.RUnlock()
	return ScalarView{plane: s.inputMask}
}

// SetInputMask overwrites the input mask at (layer, row, col).
func (s *State) SetInputMask(l, row, col int, v float32) error {
	s.muAux.Lock()
	defer s.muAux.Unlock()
	return s.inputMask.Set(l, row, col, v)
}

// DelayRing returns the field's delay ring buffer.
func (s *State) DelayRing() *delay.Ring { return s.delayRing }

// Graph returns the current topology graph, or nil if topology mode has
// never been configured.
func (s *State) Graph() *topology.Graph {
	s.muAux.RLock()
	defer s.muAux.RUnlock()
	return s.graph
}

// SetGraph installs g as the field's adjacency table (spec §3 "Graph
// adjacency (optional)").
func (s *State) SetGraph(g *topology.Graph) {
	s.muAux.Lock()
	defer s.muAux.Unlock()
	s.graph = g
}

// CheckFinite scans θ_front for NaN/Inf, the spec §7 "numerical anomaly"
// fault class. It is the caller's responsibility to invoke this after a
// step; State never checks automatically, since the core "never catches
// numerical anomalies silently" (spec §7 propagation policy).
func (s *State) CheckFinite() error {
	view := s.FrontView()
	for _, v := range view.Raw() {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return ErrNonFinite
		}
	}
	return nil
}

// Resize reallocates every plane and the delay ring to a new shape. On
// allocation failure the prior state is left completely intact (spec §7
// "resource errors ... leave prior state intact"): Resize validates the new
// shape by attempting every allocation into local variables first, and only
// installs them once all have succeeded.
func (s *State) Resize(layers, rows, cols int) error {
	fresh, err := New(layers, rows, cols)
	if err != nil {
		return fmt.Errorf("field: Resize: %w", err)
	}
	s.muSwap.Lock()
	s.front, s.back = fresh.front, fresh.back
	s.muSwap.Unlock()

	s.muAux.Lock()
	s.omega, s.order, s.inputMask = fresh.omega, fresh.order, fresh.inputMask
	s.graph = nil
	s.muAux.Unlock()

	s.delayRing = fresh.delayRing
	s.layers, s.rows, s.cols = layers, rows, cols
	return nil
}
