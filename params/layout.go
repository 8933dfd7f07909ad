package params

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ParamsUniformSize is the total byte size of the Params half of the packed
// GPU uniform (spec §6: "total 128+ bytes for Params"), rounded up to a
// 16-byte vec4 boundary.
const ParamsUniformSize = 128

// LayerUniformSize is the byte size of one LayerParams record inside the
// packed uniform (spec §6: "a length-8 array of 224-byte LayerParams
// records").
const LayerUniformSize = 224

// MarshalBinary encodes p as the fixed-layout little-endian uniform record
// described in spec §6. Every field is written in declaration order as a
// 4-byte lane (float32, int32 or a bool promoted to uint32) so every 16-byte
// vec4 lane is populated, then the record is zero-padded to
// ParamsUniformSize. Application code must never recompute these offsets by
// hand (spec §9 "Fat packed uniform record accessed by float indices" is the
// pattern being avoided) — MarshalBinary is the only writer of this layout.
func (p Params) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	fields := []interface{}{
		p.Dt, p.Cols, p.Rows, p.K0, p.Range,
		int32(p.RuleMode), int32(p.KernelShape),
		boolToU32(p.GlobalCoupling), boolToU32(p.TopologyMode),
		p.DelaySteps, p.Noise, p.Time,
		int32(p.InputMode), p.InputSignal,
		p.LayerCount, p.ActiveLayer,
		p.Active.FlowBias, p.Active.OrientGain, p.Active.ScaleGain,
		p.RenderFlags,
	}
	for _, f := range fields {
		if err := binary.Write(buf, binary.LittleEndian, f); err != nil {
			return nil, fmt.Errorf("params: MarshalBinary: %w", err)
		}
	}
	if buf.Len() > ParamsUniformSize {
		return nil, fmt.Errorf("params: MarshalBinary: encoded %d bytes exceeds %d-byte uniform", buf.Len(), ParamsUniformSize)
	}
	out := make([]byte, ParamsUniformSize)
	copy(out, buf.Bytes())
	return out, nil
}

// MarshalBinary encodes lp as one fixed-layout LayerParams uniform record,
// zero-padded to LayerUniformSize, following the same lane-per-field
// convention as Params.MarshalBinary.
func (lp LayerParams) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	fields := []interface{}{
		int32(lp.RuleMode), lp.K0, lp.Range,
		lp.HarmonicA, lp.HarmonicB,
		lp.Sigma1, lp.Sigma2, lp.Beta,
		lp.Noise, lp.Leak,
		int32(lp.Shape),
		lp.Orientation, lp.Aspect,
		lp.Asymmetry, lp.AsymmetryOrientation,
		lp.Scale2Weight, lp.Scale3Weight,
	}
	for _, r := range lp.Rings {
		fields = append(fields, r.Width, r.Weight)
	}
	fields = append(fields,
		boolToU32(lp.ComposeEnabled), int32(lp.ComposeSecondaryShape), lp.ComposeMix,
		lp.GaborK, lp.GaborTheta, lp.GaborPhi,
		lp.ScaleBase, lp.ScaleRadial, lp.ScaleRandom, lp.ScaleRing,
		lp.FlowRadial, lp.FlowRotate, lp.FlowSwirl, lp.FlowBubble, lp.FlowRing, lp.FlowVortex, lp.FlowVertical,
		lp.OrientRadial, lp.OrientCircles, lp.OrientSwirl, lp.OrientBubble, lp.OrientLinear,
		lp.CouplingUp, lp.CouplingDown, boolToU32(lp.LayerKernelEnabled),
	)
	for _, f := range fields {
		if err := binary.Write(buf, binary.LittleEndian, f); err != nil {
			return nil, fmt.Errorf("params: LayerParams.MarshalBinary: %w", err)
		}
	}
	if buf.Len() > LayerUniformSize {
		return nil, fmt.Errorf("params: LayerParams.MarshalBinary: encoded %d bytes exceeds %d-byte record", buf.Len(), LayerUniformSize)
	}
	out := make([]byte, LayerUniformSize)
	copy(out, buf.Bytes())
	return out, nil
}

// MarshalLayersBinary encodes up to MaxLayers LayerParams records back to
// back, padding any unused trailing layer slots with zeroed records so the
// output is always exactly MaxLayers*LayerUniformSize bytes — the fixed
// "length-8 array" shape spec §6 requires regardless of the live LayerCount.
func MarshalLayersBinary(layers []LayerParams) ([]byte, error) {
	out := make([]byte, 0, MaxLayers*LayerUniformSize)
	for i := 0; i < MaxLayers; i++ {
		var lp LayerParams
		if i < len(layers) {
			lp = layers[i]
		}
		enc, err := lp.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("params: MarshalLayersBinary(%d): %w", i, err)
		}
		out = append(out, enc...)
	}
	return out, nil
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
