// Package integrator implements the per-cell update spec §4.6 describes:
// rule drive, deterministic noise, external input injection, per-cell
// flow/orientation/scale modulation, inter-layer coupling, leak, and the
// final Euler step with phase wrap. Step drives the whole lattice through
// package reducer's tiled dispatch, one goroutine per row band, writing
// exclusively to field.State's back buffer and order array.
package integrator
