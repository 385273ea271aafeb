// Package render draws clustering results as SVG documents. Each point
// becomes a radial-gradient circle whose color identifies its cluster and
// whose opacity encodes its membership label; noise points are black and
// core points get a thin outline.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/TrevorS/fuzzydbscan"
)

// palette holds the noise color followed by the ColorBrewer Set1 cluster
// colors; clusters cycle through the tail.
var palette = [...]string{
	"#000000",
	"#e41a1c",
	"#377eb8",
	"#4daf4a",
	"#984ea3",
	"#ff7f00",
	"#a65628",
	"#f781bf",
}

const (
	margin        = 5.0
	pointRadius   = 0.5
	gradientStops = 9
)

// apodization shapes gradient stop opacity as a Gaussian falloff, which
// reads as a soft dot rather than a hard-edged disc.
func apodization(x float64) float64 {
	const sigma = 1.0 / 3.0
	return math.Exp(-x * x / (2.0 * sigma * sigma))
}

func gradientColors(color string) []svg.Offcolor {
	sc := make([]svg.Offcolor, 0, gradientStops)
	for s := 0; s < gradientStops; s++ {
		x := float64(s) / float64(gradientStops-1)
		sc = append(sc, svg.Offcolor{
			Offset:  uint8(math.Round(x * 100)),
			Color:   color,
			Opacity: apodization(x),
		})
	}
	return sc
}

// Clusters writes an SVG rendering of points and their cluster assignments
// to w. Points must be non-empty and at least 2-dimensional; extra
// dimensions are ignored.
func Clusters(w io.Writer, points [][]float64, clusters []fuzzydbscan.Cluster) error {
	if len(points) == 0 {
		return errors.New("render: no points")
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		if len(p) < 2 {
			return errors.Newf("render: point %d has %d dimensions, need at least 2", i, len(p))
		}
		xs[i] = p[0]
		ys[i] = p[1]
	}

	minX, maxX := floats.Min(xs), floats.Max(xs)
	minY, maxY := floats.Min(ys), floats.Max(ys)
	vw := (maxX - minX) + 2*margin
	vh := (maxY - minY) + 2*margin

	canvas := svg.New(w)
	canvas.Startview(vw, vh, minX-margin, minY-margin, vw, vh)

	canvas.Def()
	for i, color := range palette {
		canvas.RadialGradient(fmt.Sprintf("g%d", i), 50, 50, 50, 50, 50, gradientColors(color))
	}
	canvas.DefEnd()

	for ci, cluster := range clusters {
		for _, a := range cluster {
			p := points[a.Index]
			opacity := a.Label*0.9 + 0.1

			colorIndex := 0
			if a.Category != fuzzydbscan.Noise {
				colorIndex = 1 + ci%(len(palette)-1)
			}
			strokeWidth := 0.0
			if a.Category == fuzzydbscan.Core {
				strokeWidth = 0.01
			}

			canvas.Circle(p[0], p[1], pointRadius, fmt.Sprintf(
				`fill="url(#g%d)" fill-opacity="%.4f" stroke="black" stroke-width="%.2f" stroke-opacity="%.4f"`,
				colorIndex, opacity, strokeWidth, opacity))
		}
	}

	canvas.End()
	return nil
}
