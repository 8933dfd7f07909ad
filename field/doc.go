// Package field owns the lattice's live numeric state (spec §4.2): the
// double-buffered phase field θ_front/θ_back, the intrinsic frequency array
// ω, the local order array R, and the external input channel. It exposes
// read-only views to the reducer and rule packages and a write-only cursor
// to the integrator; State.Swap is the only operation that exchanges front
// and back, mirroring the teacher's core.Graph split-lock idiom (separate
// locks for state that is read far more than it is written together).
package field
