package fuzzydbscan

import "fmt"

// Config sets the fuzzy neighborhood ranges for clustering.
//
// The engine performs no validation: it is a total function over any
// configuration, and degenerate bounds (EpsMin > EpsMax, PtsMin > PtsMax)
// complete deterministically but may produce labels outside [0, 1], which
// are never clamped. Supplying non-decreasing bounds is the caller's
// contract.
type Config struct {
	// EpsMin and EpsMax bound the fuzzy neighborhood radius. Point pairs at
	// distance <= EpsMin are fully connected (membership 1.0), pairs beyond
	// EpsMax are not connected (membership 0.0), and membership falls off
	// linearly in between. EpsMin == EpsMax gives classic DBSCAN's hard
	// radius at EpsMax.
	EpsMin float64
	EpsMax float64

	// PtsMin and PtsMax bound the fuzzy density threshold. A point whose
	// neighborhood density reaches PtsMax is definitely core (label 1.0),
	// one at or below PtsMin is not core at all, and the core label scales
	// linearly in between. Density counts fuzzy memberships, not neighbors,
	// plus 1.0 for the point itself, so fractional bounds are meaningful.
	// PtsMin == PtsMax gives classic DBSCAN's hard minPts threshold.
	PtsMin float64
	PtsMax float64
}

// Category classifies an assignment within a cluster.
type Category uint8

const (
	// Core marks a point dense enough to seed or extend its cluster.
	Core Category = iota
	// Border marks a point reachable from a core point but not itself dense
	// enough to be core. The same point may border several clusters.
	Border
	// Noise marks a point reachable from no core point. Noise assignments
	// appear only in the trailing noise group.
	Noise
)

var categoryNames = [...]string{"core", "border", "noise"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler using the tokens
// "core", "border" and "noise".
func (c Category) MarshalText() ([]byte, error) {
	if int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("fuzzydbscan: invalid category %d", uint8(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if string(text) == name {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("fuzzydbscan: unknown category %q", text)
}

// Assignment ties one input point to one cluster.
type Assignment struct {
	// Index is the point's position in the input slice.
	Index int `json:"index"`

	// Label is the fuzzy membership in [0, 1]. Core labels grade how
	// confidently the point is core; border labels grade how strongly the
	// point is attached to the cluster; noise labels are fixed at 1.0.
	Label float64 `json:"label"`

	// Category is Core, Border or Noise.
	Category Category `json:"category"`
}

// Cluster is the set of assignments grown from one seed, cores first, then
// borders. Assignment order within a cluster carries no meaning.
type Cluster []Assignment

// Clusterer runs Fuzzy DBSCAN over points of type P. It holds no state
// across runs; a single Clusterer may be reused and is safe for concurrent
// use as long as the metric is.
type Clusterer[P any] struct {
	metric Metric[P]
	cfg    Config
}

// New returns a Clusterer using the given metric and configuration.
// The metric must be symmetric, non-negative and zero for identical points;
// see Config for the bounds contract. Neither is validated here.
func New[P any](metric Metric[P], cfg Config) *Clusterer[P] {
	return &Clusterer[P]{metric: metric, cfg: cfg}
}

// Cluster partitions points into fuzzy clusters.
//
// Every input index appears exactly once in the result, except that border
// points may additionally appear in further clusters they are reachable
// from. If any points are noise, the final cluster of the result is the
// noise group; it is always last. The result is non-nil; an empty input
// yields an empty result.
//
// The run is deterministic: the same points and configuration always
// produce the same clusters with the same labels.
func (c *Clusterer[P]) Cluster(points []P) []Cluster {
	n := len(points)
	clusters := []Cluster{}

	// visited is global across the whole run: each point seeds or joins at
	// most one expansion sweep as a worklist candidate per cluster, and the
	// outer loop never reconsiders a visited point.
	visited := make([]bool, n)

	// assigned records indices that ended up inside some cluster, so the
	// noise group can exclude points later claimed as borders.
	assigned := make([]bool, n)

	var noise []int
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := c.regionQuery(points, i)
		label := c.muMinPts(c.density(points, i, neighbors))
		if label == 0.0 {
			noise = append(noise, i)
			continue
		}
		clusters = append(clusters, c.expandCluster(points, i, label, neighbors, visited, assigned))
	}

	noiseCluster := make(Cluster, 0, len(noise))
	for _, i := range noise {
		if assigned[i] {
			// Claimed as a border of some cluster after its own density
			// check; it belongs there, not in the noise group.
			continue
		}
		noiseCluster = append(noiseCluster, Assignment{Index: i, Label: 1.0, Category: Noise})
	}
	if len(noiseCluster) > 0 {
		clusters = append(clusters, noiseCluster)
	}
	return clusters
}
