// Package kernel implements the spatial coupling-weight algebra (spec §4.3):
// a pure function w(Δc, Δr, layer_params) → f32 over seven named shapes, plus
// an optional two-shape composition. Nothing here reads or writes field
// state; every function is a closed-form expression of an offset and a
// params.LayerParams, mirroring the teacher's builder.WeightFn factories —
// a constructor validates and closes over the shape coefficients once, and
// the returned func is then called per (Δc, Δr) with no further allocation.
package kernel
