package field

import "github.com/wavefold/kuramoto/matrix"

// ThetaView is a read-only snapshot of one phase plane (spec §4.2: the
// reducer "Exposes read-only views"). It wraps the live *matrix.Plane
// pointer captured under State's read lock at the start of a step; the
// pointer is stable for the duration of that step since Swap is the only
// writer of front/back and it always takes the write lock.
type ThetaView struct {
	plane *matrix.Plane
}

// At returns θ at (layer, row, col).
func (v ThetaView) At(l, row, col int) (float32, error) { return v.plane.At(l, row, col) }

// Index returns the unchecked flat index for (layer, row, col), for hot-path
// callers that have already validated and wrapped their coordinates.
func (v ThetaView) Index(l, row, col int) int { return v.plane.Index(l, row, col) }

// Raw exposes the backing slice for bulk reads (e.g. copying into a delay
// ring snapshot). Callers must not mutate it.
func (v ThetaView) Raw() []float32 { return v.plane.Raw() }

// Layers, Rows, Cols report the view's shape.
func (v ThetaView) Layers() int { return v.plane.Layers() }
func (v ThetaView) Rows() int   { return v.plane.Rows() }
func (v ThetaView) Cols() int   { return v.plane.Cols() }

// ScalarView is a read-only snapshot of a single L×R×C plane such as ω or R.
type ScalarView struct {
	plane *matrix.Plane
}

func (v ScalarView) At(l, row, col int) (float32, error) { return v.plane.At(l, row, col) }
func (v ScalarView) Index(l, row, col int) int           { return v.plane.Index(l, row, col) }
func (v ScalarView) Raw() []float32                      { return v.plane.Raw() }
func (v ScalarView) Layers() int                         { return v.plane.Layers() }
func (v ScalarView) Rows() int                           { return v.plane.Rows() }
func (v ScalarView) Cols() int                           { return v.plane.Cols() }

// WriteCursor is a write-only handle onto one plane, handed to the
// integrator so it can write θ_back or R without holding field.State's lock
// for the duration of a dispatch (spec §4.2: "write-only views to the
// integrator"). Many goroutines may hold the same WriteCursor concurrently
// as long as each writes disjoint (layer, row, col) cells, which the tiled
// dispatch in package reducer guarantees.
type WriteCursor struct {
	plane *matrix.Plane
}

// Set writes v at (layer, row, col).
func (c WriteCursor) Set(l, row, col int, v float32) error { return c.plane.Set(l, row, col, v) }

// Index returns the unchecked flat index for (layer, row, col).
func (c WriteCursor) Index(l, row, col int) int { return c.plane.Index(l, row, col) }

// Raw exposes the backing slice for bulk writes.
func (c WriteCursor) Raw() []float32 { return c.plane.Raw() }
