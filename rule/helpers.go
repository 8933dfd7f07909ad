package rule

import (
	"fmt"
	"math"
)

func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }
func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// genericSum computes Σ w_ij·sin(k·(θ_j−θ_i)) and its normalizer for the
// shared skeleton classic/coherence/delayed use (spec §4.5): spatial
// neighbors with unit weight when topology_mode is off, graph neighbors
// weighted by their signed edge weight and normalized by Σ|w| (falling back
// to the neighbor count when Σ|w| < SmallNormThreshold) when it is on.
func genericSum(ctx Context, k int) (sum, norm float32, count int, err error) {
	if ctx.TopologyMode && ctx.Graph != nil {
		idx := ctx.cellIndex()
		n := ctx.Graph.Count(idx)
		var absNorm float32
		for j := 0; j < n; j++ {
			nbr, w, _ := ctx.Graph.Neighbor(idx, j)
			thetaJ, e := ctx.ThetaAt(int(nbr))
			if e != nil {
				return 0, 0, 0, fmt.Errorf("rule: genericSum: %w", e)
			}
			sum += w * sinf(float32(k)*(thetaJ-ctx.Theta))
			absNorm += absf(w)
		}
		norm = absNorm
		if absNorm < SmallNormThreshold {
			norm = float32(n)
		}
		return sum, norm, n, nil
	}

	radius := int(ctx.Range)
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			thetaJ, e := ctx.Neighbors.NeighborAny(ctx.Layer, ctx.Row, ctx.Col, dc, dr)
			if e != nil {
				return 0, 0, 0, fmt.Errorf("rule: genericSum: %w", e)
			}
			sum += sinf(float32(k) * (thetaJ - ctx.Theta))
			count++
		}
	}
	return sum, float32(count), count, nil
}

// harmonicSum computes the unweighted s_k = Σ sin(k·(θ_j−θ_i)) spec §4.5
// defines for the harmonics rule: neighbor existence (spatial range or
// graph adjacency) selects the set, but — unlike genericSum — edge weights
// never scale the terms, matching the spec's weight-free s_k definition.
func harmonicSum(ctx Context, k int) (sum float32, count int, err error) {
	if ctx.TopologyMode && ctx.Graph != nil {
		idx := ctx.cellIndex()
		n := ctx.Graph.Count(idx)
		for j := 0; j < n; j++ {
			nbr, _, _ := ctx.Graph.Neighbor(idx, j)
			thetaJ, e := ctx.ThetaAt(int(nbr))
			if e != nil {
				return 0, 0, fmt.Errorf("rule: harmonicSum: %w", e)
			}
			sum += sinf(float32(k) * (thetaJ - ctx.Theta))
		}
		return sum, n, nil
	}

	radius := int(ctx.Range)
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			thetaJ, e := ctx.Neighbors.NeighborAny(ctx.Layer, ctx.Row, ctx.Col, dc, dr)
			if e != nil {
				return 0, 0, fmt.Errorf("rule: harmonicSum: %w", e)
			}
			sum += sinf(float32(k) * (thetaJ - ctx.Theta))
			count++
		}
	}
	return sum, count, nil
}

// kernelSum computes Σ w(Δc,Δr)·sin(θ_j−θ_i) over a square spatial
// neighborhood of the given radius, skipping offsets whose weight magnitude
// falls below kernel.SmallWeightThreshold (spec §4.3 "Numerical policy").
func kernelSum(ctx Context, radius int, weight func(dc, dr float32) float32) (sum, absNorm float32, err error) {
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			w := weight(float32(dc), float32(dr))
			if absf(w) < 1e-4 {
				continue
			}
			thetaJ, e := ctx.Neighbors.NeighborAny(ctx.Layer, ctx.Row, ctx.Col, dc, dr)
			if e != nil {
				return 0, 0, fmt.Errorf("rule: kernelSum: %w", e)
			}
			sum += w * sinf(thetaJ-ctx.Theta)
			absNorm += absf(w)
		}
	}
	return sum, absNorm, nil
}
