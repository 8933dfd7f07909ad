package reducer

import "errors"

// ErrOutsideHalo indicates a NeighborLocal call for an offset with
// |Δc| or |Δr| > Halo; the caller must fall back to NeighborGlobal
// (spec §4.4: "For rules needing |Δ| > H ... the rule falls back to direct
// wrapped reads from θ_front").
var ErrOutsideHalo = errors.New("reducer: offset exceeds halo, use NeighborGlobal")
