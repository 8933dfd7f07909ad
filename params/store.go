package params

import (
	"fmt"
	"sync"
)

// Store mediates every write to Params and LayerParams (spec §4.1). It is
// the single writer; any number of goroutines may call Current/Layers
// concurrently with UpdateFull/UpdateTick, mirroring the teacher's
// core.Graph split-lock idiom — one RWMutex here, since Params/LayerParams
// are read together far more often than either is written alone.
//
// Invariant (spec §4.1): no partial update is ever visible to a dispatched
// step. Both UpdateFull and UpdateTick replace the guarded state atomically
// under the write lock, so a concurrent Current()/Layers() call observes
// either the old record or the fully new one, never a mix.
type Store struct {
	mu     sync.RWMutex
	params Params
	layers []LayerParams
}

// Option configures a Store at construction time.
type Option func(*storeConfig)

type storeConfig struct {
	params Params
	layers []LayerParams
}

// WithParams seeds the Store's initial Params instead of DefaultParams().
func WithParams(p Params) Option {
	return func(c *storeConfig) { c.params = p }
}

// WithLayers seeds the Store's initial LayerParams slice. Extra entries
// beyond MaxLayers are dropped; entries are not validated here (New
// validates the fully assembled config).
func WithLayers(layers []LayerParams) Option {
	return func(c *storeConfig) {
		if len(layers) > MaxLayers {
			layers = layers[:MaxLayers]
		}
		c.layers = append([]LayerParams(nil), layers...)
	}
}

// New builds a Store, applying opts over DefaultParams(). Unless the caller
// supplies WithLayers, the single starting layer is derived from the
// (possibly WithParams-overridden) global Params via LayerParamsFromGlobal,
// so a caller who only configures the global uniform — spec §3's "LayerParams
// = per-layer overrides of the global base" — sees that base take effect
// instead of DefaultLayerParams' own hardcoded K0/RuleMode/Shape/Noise.
// Returns an error from Params.Validate if the assembled configuration is
// invalid (spec §7, configuration errors fail fast with no partial state
// change).
func New(opts ...Option) (*Store, error) {
	cfg := storeConfig{
		params: DefaultParams(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.layers == nil {
		cfg.layers = []LayerParams{LayerParamsFromGlobal(cfg.params)}
	}
	cfg.params.LayerCount = int32(len(cfg.layers))
	if err := cfg.params.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateLayers(cfg.layers, 0, true); err != nil {
		return nil, err
	}
	s := &Store{params: cfg.params, layers: cfg.layers}
	s.syncActiveMods()
	return s, nil
}

// Current returns a copy of the current Params.
func (s *Store) Current() Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// Layers returns a copy of the current LayerParams slice.
func (s *Store) Layers() []LayerParams {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]LayerParams, len(s.layers))
	copy(out, s.layers)
	return out
}

// Layer returns a copy of LayerParams[i], or an error if i is out of range.
func (s *Store) Layer(i int) (LayerParams, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.layers) {
		return LayerParams{}, fmt.Errorf("params: Layer(%d): %w", i, ErrInvalidActiveLayer)
	}
	return s.layers[i], nil
}

// UpdateFull rewrites the entire uniform: Params and, optionally, the
// LayerParams array (spec §4.1 "update_full(p)" — "when a user-facing
// setting changes"). Pass nil for layers to leave the layer array untouched.
func (s *Store) UpdateFull(p Params, layers []LayerParams) error {
	if layers == nil {
		layers = s.Layers()
	}
	p.LayerCount = int32(len(layers))
	if err := p.Validate(); err != nil {
		return err
	}
	if err := ValidateLayers(layers, 0, true); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = p
	s.layers = append([]LayerParams(nil), layers...)
	s.syncActiveModsLocked()
	return nil
}

// UpdateTick applies the cheap per-frame patch spec §4.1 describes:
// dt_effective and the current time. It never touches LayerParams and never
// fails validation (dt/time have no invalid range the store enforces).
func (s *Store) UpdateTick(dtEffective, time float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Dt = dtEffective
	s.params.Time = time
}

// SetLayer replaces LayerParams[i], validating the change before it is made
// visible. Returns ErrInvalidActiveLayer if i is out of range.
func (s *Store) SetLayer(i int, lp LayerParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.layers) {
		return fmt.Errorf("params: SetLayer(%d): %w", i, ErrInvalidActiveLayer)
	}
	prev := s.layers[i]
	s.layers[i] = lp
	if err := ValidateLayers(s.layers, 0, true); err != nil {
		s.layers[i] = prev
		return err
	}
	if int32(i) == s.params.ActiveLayer {
		s.syncActiveModsLocked()
	}
	return nil
}

// syncActiveMods recomputes Params.Active from the active layer without
// holding the lock (used only from New, before the Store is published).
func (s *Store) syncActiveMods() { s.syncActiveModsLocked() }

// syncActiveModsLocked recomputes the duplicated ActiveMods scalars (spec §3:
// "per-layer modulation scalars duplicated for the active layer"). Caller
// must hold s.mu for writing.
func (s *Store) syncActiveModsLocked() {
	i := int(s.params.ActiveLayer)
	if i < 0 || i >= len(s.layers) {
		return
	}
	lp := s.layers[i]
	s.params.Active = ActiveMods{
		FlowBias:   lp.FlowRadial + lp.FlowRotate + lp.FlowSwirl + lp.FlowBubble + lp.FlowRing + lp.FlowVortex + lp.FlowVertical,
		OrientGain: lp.OrientRadial + lp.OrientCircles + lp.OrientSwirl + lp.OrientBubble + lp.OrientLinear,
		ScaleGain:  lp.ScaleBase,
	}
}
