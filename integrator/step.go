package integrator

import (
	"context"
	"fmt"
	"math"

	"github.com/wavefold/kuramoto/field"
	"github.com/wavefold/kuramoto/kernel"
	"github.com/wavefold/kuramoto/meanfield"
	"github.com/wavefold/kuramoto/params"
	"github.com/wavefold/kuramoto/reducer"
	"github.com/wavefold/kuramoto/rule"
)

const twoPi = 2 * math.Pi

// Config carries everything Step needs beyond the live field.State: the
// global parameter record, one LayerParams per active layer, and the
// monotonically-increasing step counter the noise hash mixes in (spec
// §4.6 step 2's "time_seed" — kept distinct from the physical clock in
// params.Params.Time, since the hash needs an integer, not a float).
type Config struct {
	Global   params.Params
	Layers   []params.LayerParams
	TimeSeed uint32
}

// Step advances the field by one Euler step, implementing spec §4.6's
// nine-step per-cell pipeline. Z must already reflect the mean field for
// the *current* θ_front (spec §4.8: "Reads a 2-component mean field Z
// produced externally each step before rule evaluation"); the caller is
// responsible for recomputing it every step, e.g. via meanfield.TreeReduce.
func Step(ctx context.Context, state *field.State, cfg Config, z meanfield.Source) error {
	layers, rows, cols := state.Layers(), state.Rows(), state.Cols()
	if len(cfg.Layers) != layers {
		return fmt.Errorf("integrator: Step: %w: got %d layer params, field has %d layers", ErrLayerCountMismatch, len(cfg.Layers), layers)
	}

	front := state.FrontView()
	if err := state.DelayRing().Push(front.Raw()); err != nil {
		return fmt.Errorf("integrator: Step: %w", err)
	}

	weights := make([]kernel.Weight, layers)
	for l, lp := range cfg.Layers {
		w, err := kernel.New(lp)
		if err != nil {
			return fmt.Errorf("integrator: Step: layer %d: %w", l, err)
		}
		weights[l] = w
	}

	omega := state.OmegaView()
	mask := state.InputMaskView()
	graph := state.Graph()
	back := state.BackCursor()
	orderOut := state.OrderCursor()
	delayRing := state.DelayRing()
	neighbors := reducer.NewNeighborhood(front)

	fn := func(layer, row, col int) error {
		lp := cfg.Layers[layer]
		theta, err := front.At(layer, row, col)
		if err != nil {
			return err
		}

		thetaAt := func(idx int) (float32, error) {
			if idx < 0 || idx >= len(front.Raw()) {
				return 0, fmt.Errorf("integrator: thetaAt: index %d out of range", idx)
			}
			return front.Raw()[idx], nil
		}

		rctx := rule.Context{
			Rows: rows, Cols: cols,
			Layer: layer, Row: row, Col: col,
			Theta:          theta,
			ThetaAt:        thetaAt,
			Neighbors:      neighbors,
			K0:             lp.K0,
			Range:          lp.Range,
			GlobalCoupling: cfg.Global.GlobalCoupling,
			TopologyMode:   cfg.Global.TopologyMode,
			Graph:          graph,
			Z:              z.Z(layer),
			Weight:         weights[layer],
			Sigma2:         lp.Sigma2,
			HarmonicA:      lp.HarmonicA,
			HarmonicB:      lp.HarmonicB,
		}

		localOrder, err := rule.ComputeOrder(rctx)
		if err != nil {
			return err
		}
		rctx.LocalOrder = localOrder
		if err := orderOut.Set(layer, row, col, localOrder); err != nil {
			return err
		}

		if lp.RuleMode == params.RuleDelayed {
			snapshot, err := delayRing.Read(int(cfg.Global.DelaySteps))
			if err != nil {
				return fmt.Errorf("integrator: delayed rule: %w", err)
			}
			rctx.ThetaAt = func(idx int) (float32, error) {
				if idx < 0 || idx >= len(snapshot) {
					return 0, fmt.Errorf("integrator: thetaAt(delayed): index %d out of range", idx)
				}
				return snapshot[idx], nil
			}
			rctx.Neighbors = reducer.NewNeighborhoodFunc(rows, cols, rctx.ThetaAt)
		}

		d, err := rule.Evaluate(lp.RuleMode, rctx)
		if err != nil {
			return err
		}

		// Step 2: deterministic per-cell noise. Kept out of d so steps 5
		// and 6 (orientation gain, scale modulation) apply to the rule
		// drive only, never to noise (spec §4.6 steps 5-6).
		var noise float32
		if lp.Noise > 1e-3 {
			cellIndex := (layer*rows+row)*cols + col
			noise = (hashUnit(cellIndex, cfg.TimeSeed) - 0.5) * 2 * lp.Noise
		}

		// Step 3: external input injection.
		omegaEff, err := omega.At(layer, row, col)
		if err != nil {
			return err
		}
		maskVal, err := mask.At(layer, row, col)
		if err != nil {
			return err
		}
		var dInput float32
		switch cfg.Global.InputMode {
		case params.InjectFrequency:
			omegaEff += 5 * maskVal * cfg.Global.InputSignal
		case params.InjectAdditive:
			dInput = 5 * maskVal * cfg.Global.InputSignal
		case params.InjectCoupling:
			d *= 1 + 0.5*maskVal*cfg.Global.InputSignal
		}

		nx := float32(col)/float32(cols) - 0.5
		ny := float32(row)/float32(rows) - 0.5

		// Step 4: flow bias.
		flow := flowBias(lp.FlowRadial, lp.FlowRotate, lp.FlowSwirl, lp.FlowBubble,
			lp.FlowRing, lp.FlowVortex, lp.FlowVertical, nx, ny) * 2

		// Step 5: orientation gain, applied to the rule drive only.
		orient := clamp(orientationGain(lp.OrientRadial, lp.OrientCircles, lp.OrientSwirl,
			lp.OrientBubble, lp.OrientLinear, nx, ny), 0.05, 8.0)

		// Step 6: scale modulation rescales the rule drive by K_scaled/K0.
		kScaled := lp.K0 * clamp(
			lp.ScaleBase+
				lp.ScaleRadial*(absf32(nx)+absf32(ny))*2+
				lp.ScaleRandom*(hashUnit21(col, row)-0.5)*2+
				lp.ScaleRing*(nx*nx+ny*ny)*4,
			0.1, 5)
		ratio := float32(1)
		if lp.K0 != 0 {
			ratio = kScaled / lp.K0
		}
		dScaled := d * ratio

		// Step 7: inter-layer coupling.
		inter, err := interLayerCoupling(neighbors, cfg.Layers, weights, layer, row, col, theta)
		if err != nil {
			return err
		}

		dyn := omegaEff + dScaled*orient + noise + inter + dInput + flow
		dyn *= 1 - lp.Leak

		thetaNext := theta + dyn*cfg.Global.Dt
		thetaNext = wrapTwoPi(thetaNext)

		return back.Set(layer, row, col, thetaNext)
	}

	if err := reducer.Dispatch(ctx, layers, rows, cols, fn); err != nil {
		return fmt.Errorf("integrator: Step: %w", err)
	}
	state.Swap()
	return state.CheckFinite()
}

func wrapTwoPi(theta float32) float32 {
	t := float64(theta)
	if t < 0 {
		t += twoPi
	}
	if t >= twoPi {
		t -= twoPi
	}
	return float32(t)
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// interLayerCoupling sums the up/down neighbor contributions of spec §4.6
// step 7: same-cell sine coupling by default, or kernel-weighted coupling
// over the neighbor layer's own shape params when that layer's
// LayerKernelEnabled flag is set. All neighbor reads go through nh, the
// shared reducer.Neighborhood built once per Step.
func interLayerCoupling(nh reducer.Neighborhood, layerParams []params.LayerParams, weights []kernel.Weight, layer, row, col int, theta float32) (float32, error) {
	var total float32
	lp := layerParams[layer]
	adjacent := []struct {
		idx  int
		gain float32
	}{
		{layer - 1, lp.CouplingUp},
		{layer + 1, lp.CouplingDown},
	}
	for _, n := range adjacent {
		if n.idx < 0 || n.idx >= len(layerParams) || n.gain == 0 {
			continue
		}
		otherLP := layerParams[n.idx]
		var contribution float32
		if otherLP.LayerKernelEnabled {
			radius := int(math.Ceil(float64(3 * otherLP.Sigma2)))
			sum, absNorm, err := kernelSumAcrossLayer(nh, weights[n.idx], n.idx, row, col, radius, theta)
			if err != nil {
				return 0, err
			}
			if absNorm >= kernel.SmallWeightThreshold {
				contribution = sum / absNorm
			}
		} else {
			otherTheta, err := nh.NeighborAny(n.idx, row, col, 0, 0)
			if err != nil {
				return 0, err
			}
			contribution = float32(math.Sin(float64(otherTheta - theta)))
		}
		total += n.gain * contribution
	}
	return total, nil
}

// kernelSumAcrossLayer walks the same-cell kernel neighborhood on layer
// otherLayer, weighted by w and compared against the *current* cell's own
// phase theta (spec §4.6 step 7: "kernel-weighted coupling over the other
// layer using that layer's params").
func kernelSumAcrossLayer(nh reducer.Neighborhood, w kernel.Weight, otherLayer, row, col, radius int, theta float32) (sum, absNorm float32, err error) {
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			weight := w(float32(dc), float32(dr))
			if absf32(weight) < kernel.SmallWeightThreshold {
				continue
			}
			other, err := nh.NeighborAny(otherLayer, row, col, dc, dr)
			if err != nil {
				return 0, 0, err
			}
			sum += weight * float32(math.Sin(float64(other-theta)))
			absNorm += absf32(weight)
		}
	}
	return sum, absNorm, nil
}
