package params

import "fmt"

// Validate checks p for the configuration-error class in spec §7: bad layer
// count, bad active layer, non-positive grid size, or an unrecognized rule /
// shape / injection mode. It never mutates p.
func (p Params) Validate() error {
	if p.LayerCount < 1 || p.LayerCount > MaxLayers {
		return fmt.Errorf("params: LayerCount=%d: %w", p.LayerCount, ErrInvalidLayerCount)
	}
	if p.ActiveLayer < 0 || p.ActiveLayer >= p.LayerCount {
		return fmt.Errorf("params: ActiveLayer=%d LayerCount=%d: %w", p.ActiveLayer, p.LayerCount, ErrInvalidActiveLayer)
	}
	if p.Cols <= 0 || p.Rows <= 0 {
		return fmt.Errorf("params: Cols=%d Rows=%d: %w", p.Cols, p.Rows, ErrInvalidGridSize)
	}
	if !p.RuleMode.Valid() {
		return fmt.Errorf("params: RuleMode=%d: %w", p.RuleMode, ErrUnknownRuleMode)
	}
	if !p.KernelShape.Valid() {
		return fmt.Errorf("params: KernelShape=%d: %w", p.KernelShape, ErrUnknownShape)
	}
	if !p.InputMode.Valid() {
		return fmt.Errorf("params: InputMode=%d: %w", p.InputMode, ErrUnknownInjectionMode)
	}
	return nil
}

// ValidateLayers checks every layer's RuleMode and Shape (plus
// ComposeSecondaryShape when composition is enabled) and,
// when reducerHalo > 0, that no layer's effective range exceeds it unless
// fallbackAllowed is true (the reducer always provides the wrapped-global
// fallback described in spec §4.4, so fallbackAllowed is normally true; it
// exists so callers that have disabled the fallback path can still fail fast).
func ValidateLayers(layers []LayerParams, reducerHalo int32, fallbackAllowed bool) error {
	for i, lp := range layers {
		if !lp.RuleMode.Valid() {
			return fmt.Errorf("params: layer %d RuleMode=%d: %w", i, lp.RuleMode, ErrUnknownRuleMode)
		}
		if !lp.Shape.Valid() {
			return fmt.Errorf("params: layer %d Shape=%d: %w", i, lp.Shape, ErrUnknownShape)
		}
		if lp.ComposeEnabled && !lp.ComposeSecondaryShape.Valid() {
			return fmt.Errorf("params: layer %d secondary Shape=%d: %w", i, lp.ComposeSecondaryShape, ErrUnknownShape)
		}
		if !fallbackAllowed && lp.Range > reducerHalo {
			return fmt.Errorf("params: layer %d Range=%d > halo=%d: %w", i, lp.Range, reducerHalo, ErrRangeExceedsHalo)
		}
	}
	return nil
}

// NormalizedRings returns lp.Rings with widths clamped to [0,1] and sorted
// ascending, resolving the spec's Open Question on non-increasing ring
// widths (spec §9): "Ring-weight convention ... is undefined; implementations
// should clamp or sort and document their choice." This implementation sorts.
func (lp LayerParams) NormalizedRings() [MaxRings]RingSpec {
	out := lp.Rings
	for i := range out {
		if out[i].Width < 0 {
			out[i].Width = 0
		}
		if out[i].Width > 1 {
			out[i].Width = 1
		}
	}
	// Insertion sort ascending by Width: MaxRings is 5, a loop beats pulling
	// in sort.Slice for five elements.
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && out[j-1].Width > out[j].Width {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}
