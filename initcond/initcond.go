package initcond

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianOmega fills n values drawn from N(mean, variance), the ω
// distribution spec §8 scenario 2 requires ("ω ~ N(0, 0.01)").
func GaussianOmega(n int, mean, variance float64, src rand.Source) []float32 {
	dist := distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance), Src: src}
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(dist.Rand())
	}
	return out
}

// UniformTheta fills n values drawn uniformly from [0, 2π) — the random
// phase seeding spec §8 scenario 2 requires ("θ uniform random in [0, 2π)").
func UniformTheta(n int, src rand.Source) []float32 {
	dist := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(dist.Rand())
	}
	return out
}

// ConstantTheta fills n values with the same phase — the "uniform phase"
// seeding spec §8 scenario 1 requires.
func ConstantTheta(n int, theta float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = theta
	}
	return out
}

// StepFront fills a rows×cols grid with θ=0 for c < cols/2 and θ=π
// otherwise, row-major — spec §8 scenario 3's "traveling front" seed.
func StepFront(rows, cols int) []float32 {
	out := make([]float32, rows*cols)
	half := cols / 2
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c >= half {
				out[r*cols+c] = math.Pi
			}
		}
	}
	return out
}

// GaussianBump fills a rows×cols grid with a small Gaussian bump centered
// on the grid plus additive noise — spec §8 scenario 4's "Mexican-hat
// spot" seed. amplitude is the bump's peak height, sigma its spread in
// cells, noiseAmplitude scales a uniform perturbation in [-noiseAmplitude,
// noiseAmplitude].
func GaussianBump(rows, cols int, amplitude, sigma, noiseAmplitude float32, src rand.Source) []float32 {
	out := make([]float32, rows*cols)
	noise := distuv.Uniform{Min: -float64(noiseAmplitude), Max: float64(noiseAmplitude), Src: src}
	cr, cc := float32(rows)/2, float32(cols)/2
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dr, dc := float32(r)-cr, float32(c)-cc
			r2 := dr*dr + dc*dc
			bump := amplitude * float32(math.Exp(-float64(r2)/(2*float64(sigma*sigma))))
			out[r*cols+c] = bump + float32(noise.Rand())
		}
	}
	return out
}
