package kernel

import (
	"fmt"
	"math"

	"github.com/wavefold/kuramoto/params"
)

// Weight is a closed-form spatial coupling weight, closed over one layer's
// shape coefficients. Callers evaluate it once per (Δc, Δr) offset; it
// allocates nothing and is safe for concurrent use by many goroutines (spec
// §4.3: "pure function").
type Weight func(dc, dr float32) float32

// SmallWeightThreshold is the absolute value below which a weight may be
// skipped during a reduction sum (spec §4.3 "Numerical policy").
const SmallWeightThreshold = 1e-4

// New builds the Weight function for lp's shape, validating σ₁ < σ₂ first
// since every formula below assumes it. If lp.ComposeEnabled, the returned
// function evaluates both lp.Shape and lp.ComposeSecondaryShape and mixes
// them with mix(s, p, r) = (1-r)*p + r*s, r = lp.ComposeMix (spec §4.3).
func New(lp params.LayerParams) (Weight, error) {
	if lp.Sigma1 >= lp.Sigma2 {
		return nil, fmt.Errorf("kernel: New: %w (sigma1=%g sigma2=%g)", ErrInvalidSigmaOrder, lp.Sigma1, lp.Sigma2)
	}
	primary, err := shapeWeight(lp.Shape, lp)
	if err != nil {
		return nil, fmt.Errorf("kernel: New: %w", err)
	}
	if !lp.ComposeEnabled {
		return primary, nil
	}
	secondary, err := shapeWeight(lp.ComposeSecondaryShape, lp)
	if err != nil {
		return nil, fmt.Errorf("kernel: New: secondary shape: %w", err)
	}
	r := lp.ComposeMix
	return func(dc, dr float32) float32 {
		p := primary(dc, dr)
		s := secondary(dc, dr)
		return mix(s, p, r)
	}, nil
}

// mix implements spec §4.3's composition mix(s, p, r) = (1-r)*p + r*s.
func mix(s, p, r float32) float32 {
	return (1-r)*p + r*s
}

func shapeWeight(shape params.ShapeKind, lp params.LayerParams) (Weight, error) {
	switch shape {
	case params.ShapeIsotropic:
		return Isotropic(lp.Sigma1, lp.Sigma2, lp.Beta), nil
	case params.ShapeAnisotropic:
		return Anisotropic(lp.Sigma1, lp.Sigma2, lp.Beta, lp.Orientation, lp.Aspect), nil
	case params.ShapeMultiScale:
		return MultiScale(lp.Sigma1, lp.Sigma2, lp.Beta, lp.Scale2Weight, lp.Scale3Weight), nil
	case params.ShapeAsymmetric:
		return Asymmetric(lp.Sigma1, lp.Sigma2, lp.Beta, lp.Asymmetry, lp.AsymmetryOrientation), nil
	case params.ShapeStep:
		return Step(lp.Sigma1, lp.Sigma2, lp.Beta), nil
	case params.ShapeMultiRing:
		return MultiRing(lp.Sigma1, lp.Sigma2, lp.NormalizedRings()), nil
	case params.ShapeGabor:
		return Gabor(lp.Sigma1, lp.Sigma2, lp.Beta, lp.GaborK, lp.GaborTheta, lp.GaborPhi), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
	}
}

// Isotropic implements the radial difference-of-Gaussians kernel (spec §4.3):
// e^(−r²/2σ₁²) − β·e^(−r²/2σ₂²).
func Isotropic(sigma1, sigma2, beta float32) Weight {
	return func(dc, dr float32) float32 {
		r2 := dc*dc + dr*dr
		return isotropicR2(r2, sigma1, sigma2, beta)
	}
}

func isotropicR2(r2, sigma1, sigma2, beta float32) float32 {
	a := float32(math.Exp(float64(-r2 / (2 * sigma1 * sigma1))))
	b := float32(math.Exp(float64(-r2 / (2 * sigma2 * sigma2))))
	return a - beta*b
}

// Anisotropic rotates the offset by -orientation and rescales the rotated Δr
// by 1/aspect before applying the isotropic formula (spec §4.3: "rotate by θ
// and scale y by 1/aspect, then isotropic").
func Anisotropic(sigma1, sigma2, beta, orientation, aspect float32) Weight {
	cosT := float32(math.Cos(float64(orientation)))
	sinT := float32(math.Sin(float64(orientation)))
	if aspect == 0 {
		aspect = 1
	}
	return func(dc, dr float32) float32 {
		rx := dc*cosT + dr*sinT
		ry := (-dc*sinT + dr*cosT) / aspect
		r2 := rx*rx + ry*ry
		return isotropicR2(r2, sigma1, sigma2, beta)
	}
}

// MultiScale adds two extra difference-of-Gaussian rings at 2σ and 3σ scale,
// weighted by scale2Weight and scale3Weight (spec §4.3: "isotropic +
// w₂·[σ→2σ] + w₃·[σ→3σ]").
func MultiScale(sigma1, sigma2, beta, scale2Weight, scale3Weight float32) Weight {
	base := Isotropic(sigma1, sigma2, beta)
	mid := Isotropic(2*sigma1, 2*sigma2, beta)
	outer := Isotropic(3*sigma1, 3*sigma2, beta)
	return func(dc, dr float32) float32 {
		return base(dc, dr) + scale2Weight*mid(dc, dr) + scale3Weight*outer(dc, dr)
	}
}

// Asymmetric multiplies the isotropic envelope by (1 + a·cos(φ−θ)), with
// φ = atan2(Δr, −Δc) (spec §4.3).
func Asymmetric(sigma1, sigma2, beta, asymmetry, orientation float32) Weight {
	iso := Isotropic(sigma1, sigma2, beta)
	return func(dc, dr float32) float32 {
		phi := float32(math.Atan2(float64(dr), float64(-dc)))
		lobe := 1 + asymmetry*float32(math.Cos(float64(phi-orientation)))
		return iso(dc, dr) * lobe
	}
}

// Step implements the piecewise-constant radial kernel (spec §4.3):
// +1 if r<σ₁, −β if σ₁≤r<σ₂, else 0.
func Step(sigma1, sigma2, beta float32) Weight {
	s1sq := sigma1 * sigma1
	s2sq := sigma2 * sigma2
	return func(dc, dr float32) float32 {
		r2 := dc*dc + dr*dr
		switch {
		case r2 < s1sq:
			return 1
		case r2 < s2sq:
			return -beta
		default:
			return 0
		}
	}
}

// MultiRing implements the piecewise radial Gaussian-bump kernel (spec
// §4.3): ring i occupies (ring_width_{i-1}, ring_width_i]·σ₂ and contributes
// ring_weight_i·e^(−(r−r_center_i)²/2σ₁²); the first ring starts at radius 0.
// rings must already be normalized (params.LayerParams.NormalizedRings) so
// widths are ascending in [0,1].
func MultiRing(sigma1, sigma2 float32, rings [params.MaxRings]params.RingSpec) Weight {
	type band struct{ inner, outer, center, weight float32 }
	bands := make([]band, 0, len(rings))
	prevOuter := float32(0)
	for _, ring := range rings {
		outer := ring.Width * sigma2
		if outer <= prevOuter {
			prevOuter = outer
			continue
		}
		center := (prevOuter + outer) / 2
		bands = append(bands, band{inner: prevOuter, outer: outer, center: center, weight: ring.Weight})
		prevOuter = outer
	}
	twoSigma1Sq := 2 * sigma1 * sigma1
	return func(dc, dr float32) float32 {
		r := float32(math.Sqrt(float64(dc*dc + dr*dr)))
		var sum float32
		for _, b := range bands {
			if r > b.outer || (r <= b.inner && b.inner > 0) {
				continue
			}
			d := r - b.center
			sum += b.weight * float32(math.Exp(float64(-d*d/twoSigma1Sq)))
		}
		return sum
	}
}

// Gabor multiplies the isotropic envelope by a plane-wave carrier
// cos(k·(Δc,Δr) + φ), with k given as magnitude and angle (spec §4.3).
func Gabor(sigma1, sigma2, beta, k, theta, phi float32) Weight {
	iso := Isotropic(sigma1, sigma2, beta)
	kx := k * float32(math.Cos(float64(theta)))
	ky := k * float32(math.Sin(float64(theta)))
	return func(dc, dr float32) float32 {
		carrier := float32(math.Cos(float64(kx*dc + ky*dr + phi)))
		return iso(dc, dr) * carrier
	}
}
