package fuzzydbscan

import "math"

// Metric measures the distance between two points of the caller's type.
// Distances must be non-negative and symmetric with Distance(a, a) == 0;
// the triangle inequality is not required. A metric is invoked O(n²) times
// per clustering run and must be side-effect free. If it panics, the run
// panics; there is no fallback distance.
type Metric[P any] interface {
	Distance(a, b P) float64
}

// MetricFunc adapts a plain function into a Metric.
type MetricFunc[P any] func(a, b P) float64

func (f MetricFunc[P]) Distance(a, b P) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance between
// equal-length float64 slices.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// For two zero vectors, the result is NaN (0/0).
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	return 1.0 - dot/math.Sqrt(normA*normB)
}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	var maxVal float64
	for i := range a {
		if v := math.Abs(a[i] - b[i]); v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1. Panics if P < 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	if m.P < 1 {
		panic("MinkowskiMetric: P must be >= 1")
	}
	var sum float64
	for i := range a {
		sum += math.Pow(math.Abs(a[i]-b[i]), m.P)
	}
	return math.Pow(sum, 1.0/m.P)
}

// MatrixMetric serves precomputed distances for index points: Distance(i, j)
// reads entry [i*N+j] of the flat row-major matrix Dist. Cluster Indices(n)
// against it to reuse a matrix built by PairwiseDistances or elsewhere.
type MatrixMetric struct {
	Dist []float64
	N    int
}

func (m MatrixMetric) Distance(i, j int) float64 { return m.Dist[i*m.N+j] }

// Indices returns the index point set 0..n-1 for use with MatrixMetric.
func Indices(n int) []int {
	ix := make([]int, n)
	for i := range ix {
		ix[i] = i
	}
	return ix
}

// PairwiseDistances computes the full n×n distance matrix for points.
// Returns a flat []float64 of length n*n in row-major order with a zero
// diagonal. Each unordered pair is evaluated once and mirrored.
func PairwiseDistances[P any](points []P, metric Metric[P]) []float64 {
	n := len(points)
	result := make([]float64, n*n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.Distance(points[i], points[j])
			result[i*n+j] = d
			result[j*n+i] = d
		}
	}

	return result
}
