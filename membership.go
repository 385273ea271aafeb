package fuzzydbscan

// muDistance grades how connected two points are: 1.0 at or inside EpsMin,
// 0.0 beyond EpsMax, linear falloff in between. With EpsMin == EpsMax this
// is a hard step at EpsMax. Branch order matters at the boundaries.
func (c *Clusterer[P]) muDistance(a, b P) float64 {
	d := c.metric.Distance(a, b)
	if d <= c.cfg.EpsMin {
		return 1.0
	}
	if d > c.cfg.EpsMax {
		return 0.0
	}
	return (c.cfg.EpsMax - d) / (c.cfg.EpsMax - c.cfg.EpsMin)
}

// muMinPts grades a density score as a core label: 1.0 at or above PtsMax,
// 0.0 at or below PtsMin, linear falloff in between. A score exactly at
// PtsMin maps to 0.0; the classic-DBSCAN reduction depends on checking the
// PtsMax bound first, so that PtsMin == PtsMax == score yields 1.0.
func (c *Clusterer[P]) muMinPts(n float64) float64 {
	if n >= c.cfg.PtsMax {
		return 1.0
	}
	if n <= c.cfg.PtsMin {
		return 0.0
	}
	return (n - c.cfg.PtsMin) / (c.cfg.PtsMax - c.cfg.PtsMin)
}
