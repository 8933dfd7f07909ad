package simulation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wavefold/kuramoto/params"
	"github.com/wavefold/kuramoto/topology"
)

// Snapshot is the persisted state layout spec §6 names: "(Params,
// LayerParams[], θ, ω, delay_ring, graph tables)". It is a reference
// collaborator, not core state — the core persists nothing by itself.
type Snapshot struct {
	ID         uuid.UUID
	Params     params.Params
	Layers     []params.LayerParams
	Theta      []float32
	Omega      []float32
	RingData   []float32
	RingCursor int
	Graph      *topology.Graph
}

// Snapshot captures the simulation's full persisted state, stamped with a
// fresh opaque ID.
func (s *Simulation) Snapshot() Snapshot {
	front := s.state.FrontView()
	omega := s.state.OmegaView()
	ring := s.state.DelayRing()
	return Snapshot{
		ID:         uuid.New(),
		Params:     s.store.Current(),
		Layers:     s.store.Layers(),
		Theta:      append([]float32(nil), front.Raw()...),
		Omega:      append([]float32(nil), omega.Raw()...),
		RingData:   ring.RawSnapshots(),
		RingCursor: ring.Cursor(),
		Graph:      s.state.Graph(),
	}
}

// Restore replaces the simulation's entire state with snap's (spec §6
// "Snapshot/restore ... consists of (Params, LayerParams[], θ, ω,
// delay_ring, graph tables)"). It resizes the field first so θ/ω land in a
// correctly-shaped plane, then installs every array.
func (s *Simulation) Restore(snap Snapshot) error {
	layerCount := int(snap.Params.LayerCount)
	rows, cols := int(snap.Params.Rows), int(snap.Params.Cols)
	if err := s.state.Resize(layerCount, rows, cols); err != nil {
		return fmt.Errorf("simulation: Restore: %w", err)
	}
	if err := s.store.UpdateFull(snap.Params, snap.Layers); err != nil {
		return fmt.Errorf("simulation: Restore: %w", err)
	}

	back := s.state.BackCursor()
	if len(snap.Theta) != len(back.Raw()) {
		return fmt.Errorf("simulation: Restore: %w: theta has %d values, want %d", ErrFieldSizeMismatch, len(snap.Theta), len(back.Raw()))
	}
	copy(back.Raw(), snap.Theta)
	s.state.Swap()

	if err := s.restoreOmega(snap.Omega); err != nil {
		return err
	}

	if snap.RingData != nil {
		if err := s.state.DelayRing().LoadRaw(snap.RingData, snap.RingCursor); err != nil {
			return fmt.Errorf("simulation: Restore: %w", err)
		}
	}

	s.state.SetGraph(snap.Graph)
	return nil
}

func (s *Simulation) restoreOmega(omega []float32) error {
	layers, rows, cols := s.state.Layers(), s.state.Rows(), s.state.Cols()
	if len(omega) != layers*rows*cols {
		return fmt.Errorf("simulation: Restore: %w: omega has %d values, want %d", ErrFieldSizeMismatch, len(omega), layers*rows*cols)
	}
	idx := 0
	for l := 0; l < layers; l++ {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := s.state.SetOmega(l, r, c, omega[idx]); err != nil {
					return fmt.Errorf("simulation: Restore: %w", err)
				}
				idx++
			}
		}
	}
	return nil
}
