package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// setDemoFlags pins every flag the demo reads, so a test never depends on
// the registered defaults or on a previously run test.
func setDemoFlags(dir string) {
	epsMin, epsMax = 10, 21
	ptsMin, ptsMax = 2, 40
	disks = 2
	diskPoints = 40
	radius = 10
	spacing = 50
	seed = 1
	gaussian = false
	precompute = false
	workers = 2
	svgPath = filepath.Join(dir, "out.svg")
	jsonPath = filepath.Join(dir, "out.json")
}

func observedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core).Sugar(), logs
}

func TestDemoLogsClusteringDuration(t *testing.T) {
	setDemoFlags(t.TempDir())
	log, logs := observedLogger()

	require.NoError(t, demo(log))

	entries := logs.FilterMessage("clustering complete").All()
	require.Len(t, entries, 1, "demo must log exactly one completion entry")

	ctx := entries[0].ContextMap()
	require.Contains(t, ctx, "duration", "completion entry must carry the elapsed time")
	elapsed, ok := ctx["duration"].(time.Duration)
	require.True(t, ok, "duration must be logged as a time.Duration")
	assert.Greater(t, elapsed, time.Duration(0))
	assert.EqualValues(t, 2, ctx["clusters"], "two well separated disks cluster cleanly")
}

func TestDemoWritesArtifacts(t *testing.T) {
	setDemoFlags(t.TempDir())
	log, _ := observedLogger()

	require.NoError(t, demo(log))

	svgData, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(svgData), "</svg>", "SVG artifact must be a complete document")
	assert.Equal(t, disks*diskPoints, strings.Count(string(svgData), "<circle"),
		"SVG artifact must draw every generated point")

	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"category"`, "JSON artifact must carry assignments")
}

func TestDemoPrecomputePathMatchesDirect(t *testing.T) {
	setDemoFlags(t.TempDir())
	log, logs := observedLogger()
	precompute = true

	require.NoError(t, demo(log))

	require.Len(t, logs.FilterMessage("precomputing distance matrix").All(), 1)
	entries := logs.FilterMessage("clustering complete").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 2, entries[0].ContextMap()["clusters"],
		"matrix path must find the same two clusters as the direct path")
}
