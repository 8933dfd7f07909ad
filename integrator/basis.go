package integrator

import "math"

// These are the per-cell spatial basis functions the flow_* and orient_*
// weights in params.LayerParams modulate (spec §4.6 steps 4-5 name the
// weights but leave their basis functions to the implementation). Each
// takes normalized coordinates nx, ny ∈ [-0.5, 0.5] (spec: "norm_x = c/C −
// 0.5, norm_y = r/R − 0.5").
func radialBasis(nx, ny float32) float32 {
	return float32(math.Hypot(float64(nx), float64(ny)))
}

func rotateBasis(nx, ny float32) float32 {
	return float32(math.Atan2(float64(ny), float64(nx)) / math.Pi)
}

func swirlBasis(nx, ny float32) float32 {
	angle := math.Atan2(float64(ny), float64(nx))
	r := radialBasis(nx, ny)
	return float32(math.Sin(4*angle)) * r
}

func bubbleBasis(nx, ny float32) float32 {
	return 1 / (1 + radialBasis(nx, ny))
}

func ringBasis(nx, ny float32) float32 {
	return float32(math.Sin(4 * math.Pi * float64(radialBasis(nx, ny))))
}

func vortexBasis(nx, ny float32) float32 {
	angle := math.Atan2(float64(ny), float64(nx))
	r := float64(radialBasis(nx, ny))
	return float32(math.Cos(angle - 4*r))
}

func verticalBasis(_, ny float32) float32 { return ny }

// flowBias computes F's unscaled inner sum from the layer's seven flow_*
// weights (spec §4.6 step 4).
func flowBias(flowRadial, flowRotate, flowSwirl, flowBubble, flowRing, flowVortex, flowVertical, nx, ny float32) float32 {
	return flowRadial*radialBasis(nx, ny) +
		flowRotate*rotateBasis(nx, ny) +
		flowSwirl*swirlBasis(nx, ny) +
		flowBubble*bubbleBasis(nx, ny) +
		flowRing*ringBasis(nx, ny) +
		flowVortex*vortexBasis(nx, ny) +
		flowVertical*verticalBasis(nx, ny)
}

// orientationGain computes O before clamping, from the layer's five
// orient_* weights (spec §4.6 step 5): 1 plus a weighted sum of basis
// functions, so a layer with all-zero orient weights yields O = 1 (no
// modulation).
func orientationGain(orientRadial, orientCircles, orientSwirl, orientBubble, orientLinear, nx, ny float32) float32 {
	return 1 +
		orientRadial*radialBasis(nx, ny) +
		orientCircles*ringBasis(nx, ny) +
		orientSwirl*swirlBasis(nx, ny) +
		orientBubble*bubbleBasis(nx, ny) +
		orientLinear*nx
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
