package geo_test

import (
	"testing"

	"github.com/katalvlaran/geofence/geo"
	"github.com/katalvlaran/geofence/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHope and trenton are ~23 km apart; anchors for all geo tests sit in
// the Delaware River valley the engine's concrete scenarios use.
var (
	newHope = geo.Point{Lat: 40.3642, Lon: -74.9513}
	trenton = geo.Point{Lat: 40.2206, Lon: -74.7597}
)

// TestPoint_Validate covers range checks on both axes.
func TestPoint_Validate(t *testing.T) {
	assert.NoError(t, geo.Point{Lat: 40, Lon: -74}.Validate())
	assert.ErrorIs(t, geo.Point{Lat: 91, Lon: 0}.Validate(), geo.ErrLatitudeRange)
	assert.ErrorIs(t, geo.Point{Lat: -91, Lon: 0}.Validate(), geo.ErrLatitudeRange)
	assert.ErrorIs(t, geo.Point{Lat: 0, Lon: 181}.Validate(), geo.ErrLongitudeRange)
	assert.ErrorIs(t, geo.Point{Lat: 0, Lon: -200}.Validate(), geo.ErrLongitudeRange)
}

// TestNormalizeBearing wraps bearings into [0,360).
func TestNormalizeBearing(t *testing.T) {
	assert.InDelta(t, 0.0, geo.NormalizeBearing(360), 1e-12)
	assert.InDelta(t, 350.0, geo.NormalizeBearing(-10), 1e-12)
	assert.InDelta(t, 90.0, geo.NormalizeBearing(450), 1e-12)
}

// TestDistance_KnownPair checks haversine against the known separation
// of the two anchor towns.
func TestDistance_KnownPair(t *testing.T) {
	d := geo.Distance(newHope, trenton)
	assert.InDelta(t, 22.6, d, 1.0, "New Hope → Trenton ≈ 22–23 km")
	assert.InDelta(t, d, geo.Distance(trenton, newHope), 1e-9, "symmetry")
	assert.InDelta(t, 0, geo.Distance(newHope, newHope), 1e-9, "identity")
}

// TestBearing_Cardinals pins the compass convention.
func TestBearing_Cardinals(t *testing.T) {
	origin := geo.Point{Lat: 40.25, Lon: -74.80}

	assert.InDelta(t, 0, geo.Bearing(origin, geo.Point{Lat: 40.35, Lon: -74.80}), 0.5, "north")
	assert.InDelta(t, 90, geo.Bearing(origin, geo.Point{Lat: 40.25, Lon: -74.70}), 0.5, "east")
	assert.InDelta(t, 180, geo.Bearing(origin, geo.Point{Lat: 40.15, Lon: -74.80}), 0.5, "south")
	assert.InDelta(t, 270, geo.Bearing(origin, geo.Point{Lat: 40.25, Lon: -74.90}), 0.5, "west")
}

// TestDestination_RoundTrip travels out and verifies distance and bearing.
func TestDestination_RoundTrip(t *testing.T) {
	const (
		dist    = 95.0
		bearing = 63.0
	)

	dst := geo.Destination(newHope, bearing, dist)
	assert.InDelta(t, dist, geo.Distance(newHope, dst), 0.01, "travelled distance")
	assert.InDelta(t, bearing, geo.Bearing(newHope, dst), 0.5, "initial bearing preserved")
}

// TestProjection_RoundTrip verifies Project∘Unproject is identity and the
// planar metric matches haversine within the documented distortion budget.
func TestProjection_RoundTrip(t *testing.T) {
	pr, err := geo.NewProjection(newHope)
	require.NoError(t, err)

	var (
		xy   = pr.Project(trenton)
		back = pr.Unproject(xy)
	)
	assert.InDelta(t, trenton.Lat, back.Lat, 1e-9, "lat round-trip")
	assert.InDelta(t, trenton.Lon, back.Lon, 1e-9, "lon round-trip")

	// Planar distance ≈ great-circle distance within 0.1% at ~23 km.
	var (
		planarD = xy.Dist(pr.Project(newHope))
		sphereD = geo.Distance(newHope, trenton)
	)
	assert.InDelta(t, sphereD, planarD, sphereD*0.001, "distortion budget at short range")
}

// TestProjection_DistortionAt100km measures distortion near the edge of the
// documented validity radius.
func TestProjection_DistortionAt100km(t *testing.T) {
	pr, err := geo.NewProjection(newHope)
	require.NoError(t, err)

	// Travel 100 km due east, where longitude scaling error is largest.
	var (
		far     = geo.Destination(newHope, 90, 100)
		planarD = pr.Project(far).Dist(planar.XY{})
	)
	assert.InDelta(t, 100, planarD, 0.1, "≤0.1% of 100 km")
}

// TestProjection_RejectsBadAnchor propagates point validation.
func TestProjection_RejectsBadAnchor(t *testing.T) {
	_, err := geo.NewProjection(geo.Point{Lat: 99, Lon: 0})
	assert.ErrorIs(t, err, geo.ErrLatitudeRange)
}

// TestMilesKm round-trips the unit conversion.
func TestMilesKm(t *testing.T) {
	assert.InDelta(t, 152.88768, geo.MilesToKm(95), 1e-9, "95 mi in km")
	assert.InDelta(t, 95, geo.KmToMiles(geo.MilesToKm(95)), 1e-12)
}
