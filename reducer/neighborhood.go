package reducer

import (
	"errors"
	"fmt"

	"github.com/wavefold/kuramoto/field"
)

// TileSize is T in spec §4.4: the square tile side a dispatch unit covers.
const TileSize = 16

// Halo is H in spec §4.4: the scratchpad halo radius; NeighborLocal serves
// offsets up to this radius, NeighborGlobal serves any offset.
const Halo = 8

// Neighborhood evaluates wrapped neighbor reads against a flat-indexed
// phase source (spec §4.4's two reducer primitives). The source is usually
// a live θ_front view (NewNeighborhood), but any other flat (layer, row,
// col)-addressable reader works too — e.g. a delay ring snapshot, which has
// no field.ThetaView of its own (NewNeighborhoodFunc).
type Neighborhood struct {
	read func(idx int) (float32, error)
	rows int
	cols int
}

// NewNeighborhood builds a Neighborhood over a live θ view.
func NewNeighborhood(view field.ThetaView) Neighborhood {
	rows, cols := view.Rows(), view.Cols()
	return NewNeighborhoodFunc(rows, cols, func(idx int) (float32, error) {
		rem := idx % (rows * cols)
		return view.At(idx/(rows*cols), rem/cols, rem%cols)
	})
}

// NewNeighborhoodFunc builds a Neighborhood over any flat
// (layer*rows+row)*cols+col reader.
func NewNeighborhoodFunc(rows, cols int, read func(idx int) (float32, error)) Neighborhood {
	return Neighborhood{read: read, rows: rows, cols: cols}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// NeighborGlobal reads θ at (layer, row+Δr, col+Δc) with periodic wrap on
// both axes, for any Δ (spec §4.4: "neighbor_global(Δc, Δr, layer) → θ").
func (n Neighborhood) NeighborGlobal(layer, row, col, dc, dr int) (float32, error) {
	r := wrap(row+dr, n.rows)
	c := wrap(col+dc, n.cols)
	idx := (layer*n.rows+r)*n.cols + c
	v, err := n.read(idx)
	if err != nil {
		return 0, fmt.Errorf("reducer: NeighborGlobal: %w", err)
	}
	return v, nil
}

// NeighborLocal reads θ at offset (Δc, Δr) from (row, col), restricted to
// |Δc|,|Δr| ≤ Halo — the scratchpad-resident fast path (spec §4.4:
// "neighbor_local(Δc, Δr) → θ (scratchpad, |Δ|≤H)"). Callers needing a
// larger offset must use NeighborGlobal instead.
func (n Neighborhood) NeighborLocal(layer, row, col, dc, dr int) (float32, error) {
	if dc > Halo || dc < -Halo || dr > Halo || dr < -Halo {
		return 0, ErrOutsideHalo
	}
	return n.NeighborGlobal(layer, row, col, dc, dr)
}

// NeighborAny reads θ at offset (Δc, Δr), preferring NeighborLocal's
// scratchpad-resident fast path within the halo and falling back to
// NeighborGlobal's direct wrapped read otherwise (spec §4.4: "for rules
// needing |Δ| > H ... the rule falls back to direct wrapped reads").
func (n Neighborhood) NeighborAny(layer, row, col, dc, dr int) (float32, error) {
	v, err := n.NeighborLocal(layer, row, col, dc, dr)
	if errors.Is(err, ErrOutsideHalo) {
		return n.NeighborGlobal(layer, row, col, dc, dr)
	}
	return v, err
}

// Rows and Cols report the neighborhood's grid shape.
func (n Neighborhood) Rows() int { return n.rows }
func (n Neighborhood) Cols() int { return n.cols }
