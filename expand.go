package fuzzydbscan

import "math"

// expandCluster grows one cluster from a fuzzy-core seed whose label and
// neighbor set the caller has already computed. Candidates drain off a
// worklist: fuzzy-core candidates join as Core and push their own neighbors
// (the density-reachability closure), the rest are held back as border
// candidates and labeled once all cores are known.
func (c *Clusterer[P]) expandCluster(points []P, seed int, seedLabel float64, seedNeighbors []int, visited, assigned []bool) Cluster {
	cluster := Cluster{{Index: seed, Label: seedLabel, Category: Core}}

	// local guards the worklist within this expansion only, marked on
	// enqueue so nothing is queued twice. The seed is marked up front so
	// chains through its own neighborhood cannot re-add it. The global
	// visited array must not block candidacy here: a point already claimed
	// as a border of one cluster can still border another.
	local := make([]bool, len(points))
	local[seed] = true

	stack := make([]int, 0, len(seedNeighbors))
	for _, q := range seedNeighbors {
		local[q] = true
		stack = append(stack, q)
	}

	var borders []Assignment
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited[q] = true

		neighbors := c.regionQuery(points, q)
		label := c.muMinPts(c.density(points, q, neighbors))
		if label > 0.0 {
			cluster = append(cluster, Assignment{Index: q, Label: label, Category: Core})
			for _, r := range neighbors {
				if !local[r] {
					local[r] = true
					stack = append(stack, r)
				}
			}
		} else {
			borders = append(borders, Assignment{Index: q, Label: math.MaxFloat64, Category: Border})
		}
	}

	// A border label is the weakest link of its strongest qualifying
	// connection: for each core within reach, the distance membership
	// capped by that core's own label, minimized over all cores. The
	// MaxFloat64 sentinel survives only if no connection qualifies, which
	// takes every reachable core sitting exactly at EpsMax.
	for b := range borders {
		for _, core := range cluster {
			mu := c.muDistance(points[borders[b].Index], points[core.Index])
			if mu > 0.0 {
				borders[b].Label = min(borders[b].Label, mu, core.Label)
			}
		}
	}

	cluster = append(cluster, borders...)
	for _, a := range cluster {
		assigned[a.Index] = true
	}
	return cluster
}
