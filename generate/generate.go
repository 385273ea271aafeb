// Package generate produces deterministic synthetic 2D point sets for
// demos, benchmarks, and tests. All generators are seeded; the same seed
// always yields the same points.
package generate

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// UniformDisk samples n points uniformly from a disk of radius r centered
// at (cx, cy).
func UniformDisk(n int, cx, cy, r float64, seed uint64) [][]float64 {
	unit := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewPCG(seed, seed)}

	points := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * unit.Rand()
		// Folding the sum of two uniforms gives a triangular density on
		// the radius fraction, which is what a uniform disk requires.
		u := unit.Rand() + unit.Rand()
		if u > 1 {
			u = 2 - u
		}
		points = append(points, []float64{
			cx + r*u*math.Cos(theta),
			cy + r*u*math.Sin(theta),
		})
	}
	return points
}

// GaussianDisk samples n points from an isotropic Gaussian with sigma = r/3
// centered at (cx, cy), rejecting samples that land outside radius r. The
// result is a bell-shaped cloud clipped to the disk.
func GaussianDisk(n int, cx, cy, r float64, seed uint64) [][]float64 {
	src := rand.NewPCG(seed, seed)
	normalX := distuv.Normal{Mu: cx, Sigma: r / 3, Src: src}
	normalY := distuv.Normal{Mu: cy, Sigma: r / 3, Src: src}

	points := make([][]float64, 0, n)
	for len(points) < n {
		x := normalX.Rand()
		y := normalY.Rand()
		if math.Hypot(x-cx, y-cy) <= r {
			points = append(points, []float64{x, y})
		}
	}
	return points
}
