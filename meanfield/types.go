package meanfield

// Z is the global mean field for one layer: the mean resultant vector of
// e^(iθ) over every cell, split into its cosine and sine parts (spec §4.5:
// "Z_sin·cos θ_i − Z_cos·sin θ_i"). |Z| is the global order parameter;
// atan2(Z.SinAvg, Z.CosAvg) is the mean phase.
type Z struct {
	CosAvg float32
	SinAvg float32
}

// Source is the external collaborator that supplies a per-layer mean field
// to rule.Classic and rule.Harmonics when global_coupling is on. The core
// never computes Z itself in that mode; it only consumes this interface.
type Source interface {
	Z(layer int) Z
}

// StaticSource is a Source backed by a fixed slice of Z values, one per
// layer — useful for tests and for a driver that recomputes Z once per step
// via TreeReduce and hands the result to the integrator as a Source.
type StaticSource []Z

// Z returns the stored mean field for layer, or the zero value if layer is
// out of range.
func (s StaticSource) Z(layer int) Z {
	if layer < 0 || layer >= len(s) {
		return Z{}
	}
	return s[layer]
}
