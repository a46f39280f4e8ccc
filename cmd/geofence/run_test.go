package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadClues parses the bundled demo scenario.
func TestLoadClues(t *testing.T) {
	records, err := loadClues(filepath.Join("testdata", "clues.yaml"))
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, 1, records[0].Ordinal)
	assert.Equal(t, "circle_include", records[0].Kind)
	assert.InDelta(t, 95.0, records[0].RadiusKm, 1e-12)
	assert.Equal(t, "sector_include", records[3].Kind)
}

// TestLoadClues_MissingFile surfaces the read error.
func TestLoadClues_MissingFile(t *testing.T) {
	_, err := loadClues(filepath.Join("testdata", "no-such-file.yaml"))
	assert.Error(t, err)
}

// TestRunCommand_EndToEnd drives the CLI over the demo scenario and
// checks the report plus both artifacts.
func TestRunCommand_EndToEnd(t *testing.T) {
	var (
		dir     = t.TempDir()
		geojson = filepath.Join(dir, "region.json")
		htmlMap = filepath.Join(dir, "map.html")
		out     bytes.Buffer
	)

	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"run",
		"--clues", filepath.Join("testdata", "clues.yaml"),
		"--geojson", geojson,
		"--map", htmlMap,
	})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "phase: narrowing")
	assert.Contains(t, out.String(), "bearing_ray")

	gj, err := os.ReadFile(geojson)
	require.NoError(t, err)
	assert.Contains(t, string(gj), "FeatureCollection")

	page, err := os.ReadFile(htmlMap)
	require.NoError(t, err)
	assert.Contains(t, string(page), "L.polygon")
}
