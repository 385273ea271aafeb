// Package fuzzydbscan implements Fuzzy DBSCAN: density-based clustering with
// a fuzzy neighborhood radius and a fuzzy neighborhood density.
//
// Classic DBSCAN takes a hard neighborhood radius eps and a hard minimum
// neighbor count minPts. Fuzzy DBSCAN widens both into ranges,
// [EpsMin, EpsMax] and [PtsMin, PtsMax], producing graded cluster
// memberships: every assignment carries a label in [0, 1] and a category
// (Core, Border, or Noise). Collapsing both ranges (EpsMin == EpsMax,
// PtsMin == PtsMax) recovers classic DBSCAN exactly, with every label 1.0.
//
// Basic usage:
//
//	c := fuzzydbscan.New[[]float64](fuzzydbscan.EuclideanMetric{}, fuzzydbscan.Config{
//		EpsMin: 10, EpsMax: 20,
//		PtsMin: 1, PtsMax: 2,
//	})
//	clusters := c.Cluster(points)
//	// clusters[i] holds the Core and Border assignments of one cluster;
//	// if any point is noise, the final element is the noise group.
//
// The engine is generic over the point type: supply any Metric
// implementation (or wrap a plain function with MetricFunc) together with
// the matching point slice. The engine never inspects or mutates point
// content; only the metric does.
//
// Border points are where the fuzziness shows. A point too sparse to be
// core but reachable from one may appear as Border in more than one
// cluster, each occurrence with its own label. Fuzzy sets are allowed to
// overlap at their borders.
//
// # Precomputed distances
//
// To cluster the same points repeatedly, or to reuse distances computed
// elsewhere, build the pairwise matrix once and cluster index points
// against it:
//
//	dist := fuzzydbscan.PairwiseDistancesParallel(points, metric, runtime.NumCPU())
//	c := fuzzydbscan.New[int](fuzzydbscan.MatrixMetric{Dist: dist, N: len(points)}, cfg)
//	clusters := c.Cluster(fuzzydbscan.Indices(len(points)))
//
// The result is identical to clustering the points directly: the matrix
// stores the same metric values, so every neighborhood comes out the same.
package fuzzydbscan
