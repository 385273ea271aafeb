package fuzzydbscan

// regionQuery returns the indices of every point other than p within EpsMax
// of it, by full scan. The engine calls this once per point visited, giving
// O(n²) distance evaluations per run.
func (c *Clusterer[P]) regionQuery(points []P, p int) []int {
	var neighbors []int
	for q := range points {
		if q == p {
			continue
		}
		if c.metric.Distance(points[q], points[p]) <= c.cfg.EpsMax {
			neighbors = append(neighbors, q)
		}
	}
	return neighbors
}

// density scores p's neighborhood: the sum of fuzzy distance memberships of
// its neighbors, plus 1.0 for p counting as present in its own
// neighborhood. The offset keeps the score comparable to a
// neighbor-count-plus-self convention and anchors the PtsMin/PtsMax bounds.
func (c *Clusterer[P]) density(points []P, p int, neighbors []int) float64 {
	d := 1.0
	for _, q := range neighbors {
		d += c.muDistance(points[p], points[q])
	}
	return d
}
