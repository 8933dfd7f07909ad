package simulation

import (
	"context"
	"fmt"

	"github.com/wavefold/kuramoto/delay"
	"github.com/wavefold/kuramoto/field"
	"github.com/wavefold/kuramoto/integrator"
	"github.com/wavefold/kuramoto/meanfield"
	"github.com/wavefold/kuramoto/params"
	"github.com/wavefold/kuramoto/topology"
)

// Simulation wires together a params.Store and a field.State and drives
// them through package integrator one step at a time (spec §6's external
// interface contract). It depends, directly or through package integrator,
// on every core package in this module.
type Simulation struct {
	store    *params.Store
	state    *field.State
	workers  int
	timeSeed uint32
}

// Option configures a Simulation at construction time.
type Option func(*config)

type config struct {
	storeOpts []params.Option
	workers   int
}

// WithParams seeds the simulation's global Params.
func WithParams(p params.Params) Option {
	return func(c *config) { c.storeOpts = append(c.storeOpts, params.WithParams(p)) }
}

// WithLayers seeds the simulation's per-layer params.
func WithLayers(layers []params.LayerParams) Option {
	return func(c *config) { c.storeOpts = append(c.storeOpts, params.WithLayers(layers)) }
}

// WithMeanFieldWorkers sets how many goroutines meanfield.TreeReduce uses
// when global_coupling is on. Default 4.
func WithMeanFieldWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// New builds a Simulation from opts, applied over params.DefaultParams()
// and one starting layer derived from it via params.LayerParamsFromGlobal
// unless WithLayers overrides the layer array explicitly (spec §4.1's New
// defaults).
func New(opts ...Option) (*Simulation, error) {
	cfg := config{workers: 4}
	for _, opt := range opts {
		opt(&cfg)
	}
	store, err := params.New(cfg.storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("simulation: New: %w", err)
	}
	p := store.Current()
	state, err := field.New(int(p.LayerCount), int(p.Rows), int(p.Cols))
	if err != nil {
		return nil, fmt.Errorf("simulation: New: %w", err)
	}
	return &Simulation{store: store, state: state, workers: cfg.workers}, nil
}

// Params returns the current global parameter record.
func (s *Simulation) Params() params.Params { return s.store.Current() }

// Store exposes the underlying params.Store for callers that need
// UpdateFull/UpdateTick/SetLayer directly (spec §4.1).
func (s *Simulation) Store() *params.Store { return s.store }

// ThetaView exposes θ_front read-only (spec §6 "Exposed: θ_front").
func (s *Simulation) ThetaView() field.ThetaView { return s.state.FrontView() }

// OrderView exposes R read-only (spec §6 "Exposed: ... R").
func (s *Simulation) OrderView() field.ScalarView { return s.state.OrderView() }

// SetGraph installs a topology adjacency table (spec §6 "Consumed: a graph
// adjacency triple ... owned by an external topology module").
func (s *Simulation) SetGraph(g *topology.Graph) { s.state.SetGraph(g) }

// Graph returns the currently installed topology adjacency table, or nil.
func (s *Simulation) Graph() *topology.Graph { return s.state.Graph() }

// Step advances the simulation by one step: it recomputes the mean field
// for every layer with global_coupling on via meanfield.TreeReduce, then
// runs integrator.Step, then advances the tick clock (spec §4.1
// "update_tick", §4.8).
func (s *Simulation) Step(ctx context.Context) error {
	p := s.store.Current()
	layers := s.store.Layers()

	zs := make(meanfield.StaticSource, len(layers))
	if p.GlobalCoupling {
		for l := range layers {
			z, err := meanfield.TreeReduce(ctx, s.state.FrontView(), l, s.workers)
			if err != nil {
				return fmt.Errorf("simulation: Step: %w", err)
			}
			zs[l] = z
		}
	}

	cfg := integrator.Config{Global: p, Layers: layers, TimeSeed: s.timeSeed}
	if err := integrator.Step(ctx, s.state, cfg, zs); err != nil {
		return fmt.Errorf("simulation: Step: %w", err)
	}
	s.timeSeed++
	s.store.UpdateTick(p.Dt, p.Time+p.Dt)
	return nil
}

// WriteTheta seeds θ with initial and resets the delay ring to copies of
// it (spec §6: "write_theta(initial_field) ... also resets the delay ring
// to copies of that field").
func (s *Simulation) WriteTheta(initial []float32) error {
	back := s.state.BackCursor()
	if len(initial) != len(back.Raw()) {
		return fmt.Errorf("simulation: WriteTheta: %w: got %d, want %d", ErrFieldSizeMismatch, len(initial), len(back.Raw()))
	}
	copy(back.Raw(), initial)
	s.state.Swap()

	ring := s.state.DelayRing()
	ring.Reset()
	for i := 0; i < delay.RingSize; i++ {
		if err := ring.Push(initial); err != nil {
			return fmt.Errorf("simulation: WriteTheta: %w", err)
		}
	}
	return nil
}

// WriteOmega seeds ω (spec §6 "write_omega(frequencies)").
func (s *Simulation) WriteOmega(frequencies []float32) error {
	layers, rows, cols := s.state.Layers(), s.state.Rows(), s.state.Cols()
	if len(frequencies) != layers*rows*cols {
		return fmt.Errorf("simulation: WriteOmega: %w: got %d, want %d", ErrFieldSizeMismatch, len(frequencies), layers*rows*cols)
	}
	idx := 0
	for l := 0; l < layers; l++ {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := s.state.SetOmega(l, r, c, frequencies[idx]); err != nil {
					return fmt.Errorf("simulation: WriteOmega: %w", err)
				}
				idx++
			}
		}
	}
	return nil
}

// Resize invalidates and recreates every per-size resource (spec §6
// "resize(L, R, C) ... invalidates and recreates all per-size resources"),
// padding or truncating LayerParams to match the new layer count.
func (s *Simulation) Resize(layerCount, rows, cols int) error {
	if err := s.state.Resize(layerCount, rows, cols); err != nil {
		return fmt.Errorf("simulation: Resize: %w", err)
	}
	p := s.store.Current()
	p.Rows, p.Cols = int32(rows), int32(cols)

	layers := s.store.Layers()
	switch {
	case layerCount > len(layers):
		for len(layers) < layerCount {
			layers = append(layers, params.LayerParamsFromGlobal(p))
		}
	case layerCount < len(layers):
		layers = layers[:layerCount]
	}
	if err := s.store.UpdateFull(p, layers); err != nil {
		return fmt.Errorf("simulation: Resize: %w", err)
	}
	return nil
}
