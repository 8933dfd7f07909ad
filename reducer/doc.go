// Package reducer implements the neighborhood reduction primitives spec
// §4.4 exposes to rules, and the tiled dispatch loop that drives one
// integration step. The original spec describes a GPU tile: T×T threads
// (T=16) cooperatively loading a (T+2H)×(T+2H) halo (H=8) into shared
// scratchpad memory before a barrier. A CPU has no analogous shared-memory
// scratchpad, so this package keeps the tile geometry (it still governs
// which offsets prefer NeighborLocal's fast path and which require
// NeighborGlobal's wrapped direct read) and replaces the GPU's
// barrier-synchronized warp with row-banded goroutines coordinated by
// errgroup.Group — one dispatch per step, no read-after-write since every
// goroutine writes only to field.WriteCursor cells it owns exclusively.
package reducer
