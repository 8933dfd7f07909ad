// Package matrix provides the flat, row-major backing storage shared by the
// lattice field, its delay history, and the kernel-weighted neighborhood
// sums: Plane, an (layer, row, col)-addressed float32 array.
//
// Plane trades the generality of the teacher's 2-D Dense matrix for a third
// axis (layer) and float32 precision, since the spec's θ/ω/R buffers are all
// L×R×C float32 planes. Everything above package field builds on top of it.
package matrix
