package params

import "fmt"

// MaxLayers is the largest supported layer count L (spec: L ∈ [1, 8]).
const MaxLayers = 8

// DMax is the fixed per-cell degree of the sparse adjacency table used when
// TopologyMode is on (spec §3).
const DMax = 16

// RingSize is the delay ring's slot count K (spec §3/§4.7).
const RingSize = 32

// RuleMode selects which coupling-drive rule a layer evaluates.
type RuleMode int32

// The six supported rule modes (spec §4.5).
const (
	RuleClassic RuleMode = iota
	RuleCoherence
	RuleCurvature
	RuleHarmonics
	RuleKernelWeighted
	RuleDelayed
)

// String renders the rule mode name, used in error messages and logs.
func (m RuleMode) String() string {
	switch m {
	case RuleClassic:
		return "classic"
	case RuleCoherence:
		return "coherence"
	case RuleCurvature:
		return "curvature"
	case RuleHarmonics:
		return "harmonics"
	case RuleKernelWeighted:
		return "kernel"
	case RuleDelayed:
		return "delayed"
	default:
		return fmt.Sprintf("RuleMode(%d)", int32(m))
	}
}

// Valid reports whether m is one of the six defined rule modes.
func (m RuleMode) Valid() bool {
	return m >= RuleClassic && m <= RuleDelayed
}

// ShapeKind selects a spatial kernel shape (spec §4.3).
type ShapeKind int32

// The seven supported kernel shapes.
const (
	ShapeIsotropic ShapeKind = iota
	ShapeAnisotropic
	ShapeMultiScale
	ShapeAsymmetric
	ShapeStep
	ShapeMultiRing
	ShapeGabor
)

// String renders the shape kind name.
func (s ShapeKind) String() string {
	switch s {
	case ShapeIsotropic:
		return "isotropic"
	case ShapeAnisotropic:
		return "anisotropic"
	case ShapeMultiScale:
		return "multi-scale"
	case ShapeAsymmetric:
		return "asymmetric"
	case ShapeStep:
		return "step"
	case ShapeMultiRing:
		return "multi-ring"
	case ShapeGabor:
		return "gabor"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int32(s))
	}
}

// Valid reports whether s is one of the seven defined shape kinds.
func (s ShapeKind) Valid() bool {
	return s >= ShapeIsotropic && s <= ShapeGabor
}

// InjectionMode selects how the external (mask, signal) pair is mixed into
// the dynamics (spec §4.6 step 3).
type InjectionMode int32

// The three supported injection modes.
const (
	InjectFrequency InjectionMode = iota // ω_eff ← ω + 5·mask·signal
	InjectAdditive                       // additive drive term
	InjectCoupling                       // multiplicative coupling modulation
)

// Valid reports whether m is one of the three defined injection modes.
func (m InjectionMode) Valid() bool {
	return m >= InjectFrequency && m <= InjectCoupling
}

// RingSpec describes one of up to 5 multi-ring bands: a cumulative outer
// width in [0,1] (scaled by σ₂ to get an absolute radius) and a signed
// weight (spec §4.3 "Multi-ring detail").
type RingSpec struct {
	Width  float32
	Weight float32
}

// MaxRings is the largest supported ring count for the multi-ring shape.
const MaxRings = 5

// LayerParams carries every per-layer override the spec's §3 "LayerParams[L]"
// table names: the rule, the base coupling and neighborhood range, the
// harmonics coefficients, the kernel shape coefficients (for every shape —
// unused fields for the active ShapeKind are simply ignored), the per-cell
// interaction modifiers, and the inter-layer coupling gains.
type LayerParams struct {
	RuleMode RuleMode
	K0       float32
	Range    int32

	// harmonics rule coefficients (spec §4.5 "harmonics").
	HarmonicA float32
	HarmonicB float32

	// Sigma1 < Sigma2 is assumed by every shape formula (spec §4.3).
	Sigma1 float32
	Sigma2 float32
	Beta   float32

	Noise float32
	Leak  float32

	Shape ShapeKind

	// anisotropic / asymmetric / gabor orientation fields.
	Orientation           float32
	Aspect                float32
	Asymmetry             float32
	AsymmetryOrientation  float32
	Scale2Weight          float32
	Scale3Weight          float32
	Rings                 [MaxRings]RingSpec
	ComposeEnabled        bool
	ComposeSecondaryShape ShapeKind
	ComposeMix            float32 // r in mix(s, p, r)
	GaborK                float32
	GaborTheta            float32
	GaborPhi              float32

	// per-cell interaction modifiers (spec §3 "per-layer interaction modifiers").
	ScaleBase   float32
	ScaleRadial float32
	ScaleRandom float32
	ScaleRing   float32

	FlowRadial   float32
	FlowRotate   float32
	FlowSwirl    float32
	FlowBubble   float32
	FlowRing     float32
	FlowVortex   float32
	FlowVertical float32

	OrientRadial  float32
	OrientCircles float32
	OrientSwirl   float32
	OrientBubble  float32
	OrientLinear  float32

	// inter-layer coupling gains (spec §3/§4.6 step 7).
	CouplingUp         float32
	CouplingDown       float32
	LayerKernelEnabled bool
}

// DefaultLayerParams returns a LayerParams with the classic rule, isotropic
// kernel, unit coupling and no modulation — a safe starting point for tests
// and the base LayerParamsFromGlobal builds on.
func DefaultLayerParams() LayerParams {
	return LayerParams{
		RuleMode: RuleClassic,
		K0:       1.0,
		Range:    1,
		Sigma1:   1.5,
		Sigma2:   4.0,
		Beta:     0.8,
		Shape:    ShapeIsotropic,
		Aspect:   1.0,

		// ScaleBase=1 makes the scale-modulation formula (spec §4.6 step 6)
		// an identity — K_scaled = K0 — when a layer sets none of the
		// scale_radial/scale_random/scale_ring perturbation weights.
		ScaleBase: 1.0,
	}
}

// LayerParamsFromGlobal returns a DefaultLayerParams() with the fields the
// spec's §3 model treats as global-base overrides — K0, Range, RuleMode,
// KernelShape and Noise — taken from p instead of their hardcoded defaults.
// Used whenever a layer is created without its own explicit LayerParams, so
// the global Params a caller configures (e.g. via simulation.WithParams)
// isn't silently shadowed by DefaultLayerParams' own K0/RuleMode/etc.
func LayerParamsFromGlobal(p Params) LayerParams {
	lp := DefaultLayerParams()
	lp.K0 = p.K0
	lp.Range = p.Range
	lp.RuleMode = p.RuleMode
	lp.Shape = p.KernelShape
	lp.Noise = p.Noise
	return lp
}

// ActiveMods is the small duplicate of the active layer's per-cell
// modulation scalars that the spec's §3 Params record carries inline
// ("per-layer modulation scalars duplicated for the active layer") so a
// consumer reading only the Params uniform need not index LayerParams[L].
type ActiveMods struct {
	FlowBias   float32
	OrientGain float32
	ScaleGain  float32
}

// Params is the single global parameter record (spec §3 "Params").
type Params struct {
	Dt   float32
	Cols int32
	Rows int32

	K0    float32
	Range int32

	RuleMode    RuleMode
	KernelShape ShapeKind

	GlobalCoupling bool
	TopologyMode   bool

	DelaySteps int32
	Noise      float32
	Time       float32

	InputMode   InjectionMode
	InputSignal float32

	LayerCount  int32
	ActiveLayer int32
	Active      ActiveMods

	// RenderFlags is an opaque pass-through for the (out-of-scope) rendering
	// pipeline's view toggles; the core never interprets it (spec §9,
	// "global mutable renderer state mixed with compute state" — keep the
	// two separated, but the uniform still has room for the caller's bits).
	RenderFlags uint32
}

// DefaultParams returns a Params describing a single 64×64 layer running the
// classic rule with unit coupling and no noise or delay.
func DefaultParams() Params {
	return Params{
		Dt:          0.05,
		Cols:        64,
		Rows:        64,
		K0:          1.0,
		Range:       1,
		RuleMode:    RuleClassic,
		KernelShape: ShapeIsotropic,
		DelaySteps:  1,
		LayerCount:  1,
		ActiveLayer: 0,
	}
}
