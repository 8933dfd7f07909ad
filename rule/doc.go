// Package rule implements the six coupling-drive evaluators of spec §4.5:
// classic, coherence, curvature, harmonics, kernel-weighted, and delayed.
// Every evaluator computes drive = K_eff · Σf(θ_j, θ_i) / norm over some
// neighborhood — spatial offsets, graph adjacency, or a delayed snapshot —
// and shares the small-norm recovery policy of spec §7: a normalizer below
// 1e-4 yields drive = 0 instead of a division.
package rule
