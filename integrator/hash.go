package integrator

// hashMixer is the deterministic 32-bit integer mixer spec §4.6 specifies:
// "xor-shift with constant multiplier 0x27d4eb2d, then divide by 2^32".
const hashMixer uint32 = 0x27d4eb2d

func hash32(x uint32) uint32 {
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	x *= hashMixer
	return x
}

// hashUnit hashes (cellIndex, timeSeed) to a value in [0,1), the per-cell,
// per-step noise source (spec §4.6 step 2: "hash(cell_index, time_seed)").
func hashUnit(cellIndex int, timeSeed uint32) float32 {
	h := hash32(uint32(cellIndex)*2654435761 ^ timeSeed)
	return float32(h) / 4294967296.0
}

// hashUnit21 hashes a (col, row) pair to a value in [0,1), the static
// per-cell source spec §4.6 step 6 calls "hash21(c,r)" — unlike hashUnit,
// it does not vary with time, matching the scale-modulation formula which
// takes only (c,r) as arguments.
func hashUnit21(col, row int) float32 {
	packed := uint32(col)*73856093 ^ uint32(row)*19349663
	h := hash32(packed)
	return float32(h) / 4294967296.0
}
