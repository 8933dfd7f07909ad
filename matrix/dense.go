// Package matrix provides the flat, row-major backing storage shared by the
// lattice field and its history. Plane is a concrete, (layer, row, col)
// addressed store of float32 values held in one contiguous slice for cache
// friendliness, generalizing the teacher's 2-D Dense matrix to the third
// (layer) axis the lattice field needs.
package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested plane dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a (layer, row, col) index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// planeErrorf wraps an underlying error with Plane method context.
func planeErrorf(method string, l, row, col int, err error) error {
	return fmt.Errorf("Plane.%s(%d,%d,%d): %w", method, l, row, col, err)
}

// Plane is a row-major (layer, row, col) array of float32 values.
// L is layer count, R is rows, C is columns; data holds L*R*C elements with
// layer as the outermost stride, matching the spec's θ/ω/R addressing.
type Plane struct {
	l, r, c int
	data    []float32
}

// NewPlane creates an L×R×C Plane initialized to zeros.
// Complexity: O(L*R*C) time and memory.
func NewPlane(layers, rows, cols int) (*Plane, error) {
	if layers <= 0 || rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Plane{l: layers, r: rows, c: cols, data: make([]float32, layers*rows*cols)}, nil
}

// Layers returns the number of layers.
func (p *Plane) Layers() int { return p.l }

// Rows returns the number of rows per layer.
func (p *Plane) Rows() int { return p.r }

// Cols returns the number of columns per row.
func (p *Plane) Cols() int { return p.c }

// Len returns the total element count L*R*C.
func (p *Plane) Len() int { return len(p.data) }

// indexOf computes the flat index for (layer, row, col) or ErrIndexOutOfBounds.
func (p *Plane) indexOf(l, row, col int) (int, error) {
	if l < 0 || l >= p.l {
		return 0, planeErrorf("indexOf", l, row, col, ErrIndexOutOfBounds)
	}
	if row < 0 || row >= p.r {
		return 0, planeErrorf("indexOf", l, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= p.c {
		return 0, planeErrorf("indexOf", l, row, col, ErrIndexOutOfBounds)
	}
	return (l*p.r+row)*p.c + col, nil
}

// At retrieves the element at (layer, row, col).
func (p *Plane) At(l, row, col int) (float32, error) {
	idx, err := p.indexOf(l, row, col)
	if err != nil {
		return 0, err
	}
	return p.data[idx], nil
}

// Set assigns value v at (layer, row, col).
func (p *Plane) Set(l, row, col int, v float32) error {
	idx, err := p.indexOf(l, row, col)
	if err != nil {
		return err
	}
	p.data[idx] = v
	return nil
}

// Index computes the flat index for (layer, row, col) without bounds checking,
// for hot-path callers (the reducer, the integrator) that have already wrapped
// their coordinates and validated the layer index once per dispatch.
func (p *Plane) Index(l, row, col int) int {
	return (l*p.r+row)*p.c + col
}

// Raw exposes the backing slice directly. Callers in this module use it for
// bulk operations (copy into a delay ring, swap front/back); external
// consumers should prefer the read-only views in package field.
func (p *Plane) Raw() []float32 { return p.data }

// Clone returns a deep copy of the Plane.
// Complexity: O(L*R*C) time and memory.
func (p *Plane) Clone() *Plane {
	cp := make([]float32, len(p.data))
	copy(cp, p.data)
	return &Plane{l: p.l, r: p.r, c: p.c, data: cp}
}

// Fill sets every element to v.
func (p *Plane) Fill(v float32) {
	for i := range p.data {
		p.data[i] = v
	}
}

// String implements fmt.Stringer for debugging small planes.
func (p *Plane) String() string {
	s := ""
	for l := 0; l < p.l; l++ {
		s += fmt.Sprintf("layer %d:\n", l)
		for row := 0; row < p.r; row++ {
			s += "["
			for col := 0; col < p.c; col++ {
				s += fmt.Sprintf("%g", p.data[p.Index(l, row, col)])
				if col < p.c-1 {
					s += ", "
				}
			}
			s += "]\n"
		}
	}
	return s
}
