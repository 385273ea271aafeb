package fuzzydbscan

import "sync"

// PairwiseDistancesParallel computes the full n×n distance matrix using
// multiple goroutines. numWorkers controls the degree of parallelism; if
// <= 1, it falls back to single-threaded PairwiseDistances. The metric must
// be safe for concurrent use.
//
// The result is bitwise identical to PairwiseDistances: a flat []float64 of
// length n×n in row-major order.
func PairwiseDistancesParallel[P any](points []P, metric Metric[P], numWorkers int) []float64 {
	n := len(points)
	if numWorkers <= 1 || n <= 1 {
		return PairwiseDistances(points, metric)
	}

	result := make([]float64, n*n)

	// Split rows across workers. Each worker handles a contiguous range of
	// "source" rows and computes dist(i,j) for all j > i in that range.
	// Since row ranges don't overlap, no synchronization is needed for writes.
	var wg sync.WaitGroup

	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					d := metric.Distance(points[i], points[j])
					result[i*n+j] = d
					result[j*n+i] = d
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return result
}
