package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/geofence/constraint"
	"github.com/katalvlaran/geofence/geo"
	"github.com/katalvlaran/geofence/narrow"
	"github.com/katalvlaran/geofence/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// narrowedEngine runs the standard two-circle scenario.
func narrowedEngine(t *testing.T) *narrow.Engine {
	t.Helper()
	eng := narrow.New()

	c1, err := constraint.Circle(1, geo.Point{Lat: 40.2153, Lon: -74.9070}, 95)
	require.NoError(t, err)
	_, err = eng.Apply(c1)
	require.NoError(t, err)

	c2, err := constraint.Circle(2, geo.Point{Lat: 40.2189, Lon: -74.8857}, 90)
	require.NoError(t, err)
	_, err = eng.Apply(c2)
	require.NoError(t, err)

	return eng
}

// TestText_TableAndPhase renders the per-day table with both area units.
func TestText_TableAndPhase(t *testing.T) {
	var (
		eng = narrowedEngine(t)
		buf bytes.Buffer
	)

	require.NoError(t, report.Text(&buf, eng))
	out := buf.String()

	assert.Contains(t, out, "ORDINAL", "table header present")
	assert.Contains(t, out, "circle_include", "constraint kinds listed")
	assert.Contains(t, out, "phase: narrowing")
	assert.Equal(t, 4, strings.Count(out, "\n"), "header + two rows + phase line")
}

// TestText_Contradiction includes the cause line after infeasibility.
func TestText_Contradiction(t *testing.T) {
	eng := narrowedEngine(t)

	kill, err := constraint.SectorExcl(3, geo.Point{Lat: 40.2153, Lon: -74.9070}, 0, 150, 0, 0)
	require.NoError(t, err)
	_, err = eng.Apply(kill)
	require.ErrorIs(t, err, narrow.ErrInfeasible)

	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, eng))
	assert.Contains(t, buf.String(), "phase: infeasible")
	assert.Contains(t, buf.String(), "contradiction:")
}

// TestGeoJSON_Structure validates the FeatureCollection shape and the
// [lon,lat] ring order with explicit closure.
func TestGeoJSON_Structure(t *testing.T) {
	eng := narrowedEngine(t)

	raw, err := report.GeoJSON(eng)
	require.NoError(t, err)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Type       string         `json:"type"`
			Properties map[string]any `json:"properties"`
			Geometry   struct {
				Type        string          `json:"type"`
				Coordinates json.RawMessage `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(raw, &fc))

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2, "one region polygon + centroid")
	assert.Equal(t, "Polygon", fc.Features[0].Geometry.Type)
	assert.Equal(t, "Point", fc.Features[1].Geometry.Type)

	var rings [][][2]float64
	require.NoError(t, json.Unmarshal(fc.Features[0].Geometry.Coordinates, &rings))
	require.Len(t, rings, 1)
	ring := rings[0]
	require.GreaterOrEqual(t, len(ring), 4)
	assert.Equal(t, ring[0], ring[len(ring)-1], "ring closed explicitly")
	assert.InDelta(t, -74.9, ring[0][0], 1.5, "GeoJSON puts longitude first")
	assert.InDelta(t, 40.2, ring[0][1], 1.5, "latitude second")
}

// TestHTMLMap_Renders writes a Leaflet page mentioning the polygons.
func TestHTMLMap_Renders(t *testing.T) {
	var (
		eng = narrowedEngine(t)
		buf bytes.Buffer
	)

	require.NoError(t, report.HTMLMap(&buf, eng))
	out := buf.String()

	assert.Contains(t, out, "leaflet", "Leaflet assets referenced")
	assert.Contains(t, out, "L.polygon", "region polygon drawn")
	assert.Contains(t, out, "narrowing", "phase in the popup")
}
