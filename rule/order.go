package rule

import (
	"fmt"
	"math"
)

// ComputeOrder computes R_i, the local order parameter spec §4.5 defines:
// if topology_mode, R_i = |Σ e^(iθ_j)·|w_ij|| / Σ|w_ij|; otherwise the same
// formula over the spatial neighborhood with unit weights. It is computed
// once per cell per step, ahead of rule evaluation, since Coherence needs
// the result.
func ComputeOrder(ctx Context) (float32, error) {
	if ctx.TopologyMode && ctx.Graph != nil {
		idx := ctx.cellIndex()
		n := ctx.Graph.Count(idx)
		var sumCos, sumSin, absNorm float32
		for j := 0; j < n; j++ {
			nbr, w, _ := ctx.Graph.Neighbor(idx, j)
			thetaJ, err := ctx.ThetaAt(int(nbr))
			if err != nil {
				return 0, fmt.Errorf("rule: ComputeOrder: %w", err)
			}
			aw := absf(w)
			sumCos += cosf(thetaJ) * aw
			sumSin += sinf(thetaJ) * aw
			absNorm += aw
		}
		if absNorm < SmallNormThreshold {
			return 0, nil
		}
		return float32(math.Hypot(float64(sumCos), float64(sumSin))) / absNorm, nil
	}

	radius := int(ctx.Range)
	var sumCos, sumSin float32
	count := 0
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			thetaJ, err := ctx.Neighbors.NeighborAny(ctx.Layer, ctx.Row, ctx.Col, dc, dr)
			if err != nil {
				return 0, fmt.Errorf("rule: ComputeOrder: %w", err)
			}
			sumCos += cosf(thetaJ)
			sumSin += sinf(thetaJ)
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float32(math.Hypot(float64(sumCos), float64(sumSin))) / float32(count), nil
}
