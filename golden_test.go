package fuzzydbscan

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

type goldenConfig struct {
	EpsMin float64 `json:"eps_min"`
	EpsMax float64 `json:"eps_max"`
	PtsMin float64 `json:"pts_min"`
	PtsMax float64 `json:"pts_max"`
}

type goldenData struct {
	Description string       `json:"description"`
	Config      goldenConfig `json:"config"`
	Points      [][]float64  `json:"points"`
	Clusters    []Cluster    `json:"clusters"`
}

func loadGoldenFile(t *testing.T, path string) goldenData {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}
	var gd goldenData
	if err := json.Unmarshal(raw, &gd); err != nil {
		t.Fatalf("failed to parse golden file %s: %v", path, err)
	}
	return gd
}

// TestGoldenFiles verifies full clustering output against hand-verified
// reference results. Each golden file carries its own parameter ranges, so
// a scenario exercises exactly the corner it was built for, and the whole
// result is pinned: cluster count, cluster order, every index, label, and
// category.
func TestGoldenFiles(t *testing.T) {
	files, err := filepath.Glob("testdata/*.json")
	if err != nil {
		t.Fatalf("failed to glob testdata: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no golden test files found in testdata/")
	}

	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			gd := loadGoldenFile(t, f)

			c := New[[]float64](EuclideanMetric{}, Config{
				EpsMin: gd.Config.EpsMin,
				EpsMax: gd.Config.EpsMax,
				PtsMin: gd.Config.PtsMin,
				PtsMax: gd.Config.PtsMax,
			})
			got := c.Cluster(gd.Points)

			assertClustersEqual(t, got, gd.Clusters)
			checkCoverage(t, len(gd.Points), got)
		})
	}
}
