package rule

import (
	"fmt"
	"math"

	"github.com/wavefold/kuramoto/params"
)

// Evaluate dispatches ctx to the evaluator named by mode.
func Evaluate(mode params.RuleMode, ctx Context) (float32, error) {
	switch mode {
	case params.RuleClassic:
		return Classic(ctx)
	case params.RuleCoherence:
		return Coherence(ctx)
	case params.RuleCurvature:
		return Curvature(ctx)
	case params.RuleHarmonics:
		return Harmonics(ctx)
	case params.RuleKernelWeighted:
		return KernelWeighted(ctx)
	case params.RuleDelayed:
		return Delayed(ctx)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

// classicNormalizedSum returns sum/norm for the classic coupling skeleton,
// substituting the mean-field closed form Z_sin·cosθ_i − Z_cos·sinθ_i when
// global_coupling is on (spec §4.5).
func classicNormalizedSum(ctx Context) (float32, error) {
	if ctx.GlobalCoupling {
		return ctx.Z.SinAvg*cosf(ctx.Theta) - ctx.Z.CosAvg*sinf(ctx.Theta), nil
	}
	sum, norm, count, err := genericSum(ctx, 1)
	if err != nil {
		return 0, err
	}
	if count == 0 || norm < SmallNormThreshold {
		return 0, nil
	}
	return sum / norm, nil
}

// Classic implements f = sin(θ_j − θ_i), K_eff = K0 (spec §4.5).
func Classic(ctx Context) (float32, error) {
	s, err := classicNormalizedSum(ctx)
	if err != nil {
		return 0, err
	}
	return ctx.K0 * s, nil
}

// Coherence implements the classic drive with K_eff = K0·(1 − 0.8·R_i)
// (spec §4.5).
func Coherence(ctx Context) (float32, error) {
	s, err := classicNormalizedSum(ctx)
	if err != nil {
		return 0, err
	}
	kEff := ctx.K0 * (1 - 0.8*ctx.LocalOrder)
	return kEff * s, nil
}

// Curvature implements drive = K0·min(1, 2|L|)·L, L = sum/norm (spec §4.5),
// where norm is the neighbor count, or Σ|w| in topology mode (see genericSum).
func Curvature(ctx Context) (float32, error) {
	sum, norm, count, err := genericSum(ctx, 1)
	if err != nil {
		return 0, err
	}
	if count == 0 || norm < SmallNormThreshold {
		return 0, nil
	}
	l := sum / norm
	sat := float32(1)
	if 2*absf(l) < 1 {
		sat = 2 * absf(l)
	}
	return ctx.K0 * sat * l, nil
}

// Harmonics implements drive = K0·(s₁ + a·s₂ + b·s₃)/count (spec §4.5),
// with s₂/s₃ degrading to s₁·(a or b)·|Z| under global_coupling since the
// mean field's harmonics are not tracked separately.
func Harmonics(ctx Context) (float32, error) {
	if ctx.GlobalCoupling {
		s1 := ctx.Z.SinAvg*cosf(ctx.Theta) - ctx.Z.CosAvg*sinf(ctx.Theta)
		absZ := float32(math.Hypot(float64(ctx.Z.CosAvg), float64(ctx.Z.SinAvg)))
		s2 := s1 * ctx.HarmonicA * absZ
		s3 := s1 * ctx.HarmonicB * absZ
		return ctx.K0 * (s1 + ctx.HarmonicA*s2 + ctx.HarmonicB*s3), nil
	}
	s1, count, err := harmonicSum(ctx, 1)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	s2, _, err := harmonicSum(ctx, 2)
	if err != nil {
		return 0, err
	}
	s3, _, err := harmonicSum(ctx, 3)
	if err != nil {
		return 0, err
	}
	return ctx.K0 * (s1 + ctx.HarmonicA*s2 + ctx.HarmonicB*s3) / float32(count), nil
}

// KernelWeighted uses the kernel algebra as spatial weights, with
// range = ceil(3·σ₂) and normalization Σ|w| (spec §4.5). ctx.Weight must be
// set (built via package kernel from the active layer's shape params).
func KernelWeighted(ctx Context) (float32, error) {
	radius := int(math.Ceil(float64(3 * ctx.Sigma2)))
	sum, absNorm, err := kernelSum(ctx, radius, ctx.Weight)
	if err != nil {
		return 0, err
	}
	if absNorm < SmallNormThreshold {
		return 0, nil
	}
	return ctx.K0 * sum / absNorm, nil
}

// Delayed implements the classic-shape sum reading from ctx.ThetaAt, which
// the integrator wires to a delay ring snapshot instead of θ_front before
// calling this evaluator (spec §4.5 "delayed").
func Delayed(ctx Context) (float32, error) {
	sum, norm, count, err := genericSum(ctx, 1)
	if err != nil {
		return 0, err
	}
	if count == 0 || norm < SmallNormThreshold {
		return 0, nil
	}
	return ctx.K0 * sum / norm, nil
}
