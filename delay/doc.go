// Package delay implements the feedback delay ring buffer (spec §3 "Delay
// ring", §4.5 "delayed" rule): K byte-for-byte snapshots of the flattened
// phase field, addressed by a cursor that advances modulo K once per step.
// The ring is backed by a single matrix.Plane (one "row" per snapshot slot)
// rather than a slice of slices or the standard library's container/ring,
// so a snapshot copy is one contiguous memmove and the whole ring is one
// allocation, following the teacher's flat-storage convention used
// throughout matrix.Plane.
package delay
