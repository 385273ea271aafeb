package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TrevorS/fuzzydbscan"
	"github.com/TrevorS/fuzzydbscan/generate"
	"github.com/TrevorS/fuzzydbscan/render"
)

var rootCmd = &cobra.Command{
	Use:   "fuzzydbscan",
	Short: "Cluster synthetic point clouds with fuzzy DBSCAN",
	Long: `Generate a row of synthetic 2D disks, cluster them with fuzzy DBSCAN,
and report per-cluster composition. Results can be exported as SVG (one
gradient circle per point, opacity tracking the membership label) or as
JSON.

Examples:
  fuzzydbscan                                  # two uniform disks, default ranges
  fuzzydbscan --disks 3 --spacing 25           # overlapping disks, fuzzy borders
  fuzzydbscan --gaussian --svg out.svg         # Gaussian clouds, rendered
  fuzzydbscan --precompute --workers 8         # cluster via a distance matrix`,
	RunE: runDemo,
}

var (
	epsMin     float64
	epsMax     float64
	ptsMin     float64
	ptsMax     float64
	disks      int
	diskPoints int
	radius     float64
	spacing    float64
	seed       uint64
	gaussian   bool
	svgPath    string
	jsonPath   string
	precompute bool
	workers    int
	jsonLogs   bool
)

func init() {
	rootCmd.Flags().Float64Var(&epsMin, "eps-min", 10, "Distance below which two points are fully connected")
	rootCmd.Flags().Float64Var(&epsMax, "eps-max", 20, "Distance above which two points are not connected")
	rootCmd.Flags().Float64Var(&ptsMin, "pts-min", 50, "Density below which a point cannot be core")
	rootCmd.Flags().Float64Var(&ptsMax, "pts-max", 100, "Density at which a point is fully core")
	rootCmd.Flags().IntVar(&disks, "disks", 2, "Number of synthetic disks to generate")
	rootCmd.Flags().IntVar(&diskPoints, "points", 100, "Points per disk")
	rootCmd.Flags().Float64Var(&radius, "radius", 10, "Disk radius")
	rootCmd.Flags().Float64Var(&spacing, "spacing", 50, "Distance between disk centers")
	rootCmd.Flags().Uint64Var(&seed, "seed", 1, "Base random seed (disk i uses seed+i)")
	rootCmd.Flags().BoolVar(&gaussian, "gaussian", false, "Sample Gaussian clouds instead of uniform disks")
	rootCmd.Flags().StringVar(&svgPath, "svg", "", "Write an SVG rendering to this path")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Write clusters as JSON to this path")
	rootCmd.Flags().BoolVar(&precompute, "precompute", false, "Precompute the distance matrix and cluster point indices against it")
	rootCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Workers for the parallel distance matrix (with --precompute)")
	rootCmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "Emit JSON logs instead of console output")
}

func newLogger() (*zap.SugaredLogger, error) {
	if jsonLogs {
		logger, err := zap.NewProduction()
		if err != nil {
			return nil, err
		}
		return logger.Sugar(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	defer log.Sync()
	return demo(log)
}

func demo(log *zap.SugaredLogger) error {
	points := buildPoints()
	log.Infow("generated points",
		"disks", disks,
		"total", len(points),
		"radius", radius,
		"gaussian", gaussian,
		"seed", seed)

	cfg := fuzzydbscan.Config{EpsMin: epsMin, EpsMax: epsMax, PtsMin: ptsMin, PtsMax: ptsMax}

	var clusters []fuzzydbscan.Cluster
	start := time.Now()
	if precompute {
		log.Infow("precomputing distance matrix", "workers", workers)
		matrix := fuzzydbscan.MatrixMetric{
			Dist: fuzzydbscan.PairwiseDistancesParallel(points, fuzzydbscan.EuclideanMetric{}, workers),
			N:    len(points),
		}
		clusters = fuzzydbscan.New[int](matrix, cfg).Cluster(fuzzydbscan.Indices(len(points)))
	} else {
		clusters = fuzzydbscan.New[[]float64](fuzzydbscan.EuclideanMetric{}, cfg).Cluster(points)
	}
	log.Infow("clustering complete", "clusters", len(clusters), "duration", time.Since(start))

	printSummary(clusters)

	if svgPath != "" {
		if err := writeSVG(svgPath, points, clusters); err != nil {
			return err
		}
		log.Infow("wrote SVG", "path", svgPath)
	}
	if jsonPath != "" {
		if err := writeJSON(jsonPath, clusters); err != nil {
			return err
		}
		log.Infow("wrote JSON", "path", jsonPath)
	}
	return nil
}

// buildPoints lays the disks out on a horizontal line, one seed per disk so
// each cloud is independently reproducible.
func buildPoints() [][]float64 {
	points := make([][]float64, 0, disks*diskPoints)
	for d := 0; d < disks; d++ {
		cx := float64(d) * spacing
		diskSeed := seed + uint64(d)
		if gaussian {
			points = append(points, generate.GaussianDisk(diskPoints, cx, 0, radius, diskSeed)...)
		} else {
			points = append(points, generate.UniformDisk(diskPoints, cx, 0, radius, diskSeed)...)
		}
	}
	return points
}

func printSummary(clusters []fuzzydbscan.Cluster) {
	pterm.Println()
	for ci, cluster := range clusters {
		var cores, borders, noise int
		minLabel, maxLabel := math.Inf(1), math.Inf(-1)
		for _, a := range cluster {
			switch a.Category {
			case fuzzydbscan.Core:
				cores++
			case fuzzydbscan.Border:
				borders++
			case fuzzydbscan.Noise:
				noise++
			}
			minLabel = math.Min(minLabel, a.Label)
			maxLabel = math.Max(maxLabel, a.Label)
		}

		name := fmt.Sprintf("cluster %d", ci)
		if noise > 0 {
			name = "noise group"
		}
		pterm.Printf("%s: %s points (%d core, %d border, %d noise), labels %.2f..%.2f\n",
			pterm.LightCyan(name), pterm.Green(fmt.Sprintf("%d", len(cluster))),
			cores, borders, noise, minLabel, maxLabel)
	}
	pterm.Println()
	pterm.Success.Printf("%d clusters\n", len(clusters))
}

func writeSVG(path string, points [][]float64, clusters []fuzzydbscan.Cluster) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create SVG file")
	}
	defer f.Close()

	if err := render.Clusters(f, points, clusters); err != nil {
		return errors.Wrap(err, "failed to render SVG")
	}
	return nil
}

func writeJSON(path string, clusters []fuzzydbscan.Cluster) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create JSON file")
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(clusters); err != nil {
		return errors.Wrap(err, "failed to encode clusters")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
