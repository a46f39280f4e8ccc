package constraint_test

import (
	"testing"

	"github.com/katalvlaran/geofence/constraint"
	"github.com/katalvlaran/geofence/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = geo.Point{Lat: 40.2493, Lon: -74.8150}

// TestCircle_Valid accepts a positive radius and stamps the ordinal.
func TestCircle_Valid(t *testing.T) {
	c, err := constraint.Circle(1, origin, 95)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Ordinal)
	assert.Equal(t, constraint.KindCircleInclude, c.Kind)
	assert.True(t, c.Kind.Include())
}

// TestCircle_Invalid rejects non-positive radii and bad coordinates.
func TestCircle_Invalid(t *testing.T) {
	_, err := constraint.Circle(1, origin, 0)
	assert.ErrorIs(t, err, constraint.ErrInvalidConstraint, "zero radius")

	_, err = constraint.Circle(1, origin, -5)
	assert.ErrorIs(t, err, constraint.ErrInvalidConstraint, "negative radius")

	_, err = constraint.Circle(1, geo.Point{Lat: 95, Lon: 0}, 10)
	assert.ErrorIs(t, err, constraint.ErrInvalidConstraint, "latitude out of range")
}

// TestRay_ToleranceBounds checks the [0,180] tolerance and [0,360) bearing contracts.
func TestRay_ToleranceBounds(t *testing.T) {
	_, err := constraint.Ray(2, origin, 90, 5)
	assert.NoError(t, err)

	_, err = constraint.Ray(2, origin, 90, 180)
	assert.NoError(t, err, "tolerance 180 (full turn) is legal")

	_, err = constraint.Ray(2, origin, 90, 181)
	assert.ErrorIs(t, err, constraint.ErrInvalidConstraint)

	_, err = constraint.Ray(2, origin, 360, 5)
	assert.ErrorIs(t, err, constraint.ErrInvalidConstraint, "bearing 360 must normalize upstream")

	_, err = constraint.Ray(2, origin, -1, 5)
	assert.ErrorIs(t, err, constraint.ErrInvalidConstraint)
}

// TestSector_RadiusOrdering rejects inner ≥ outer and negative inner radii.
func TestSector_RadiusOrdering(t *testing.T) {
	_, err := constraint.SectorExcl(3, origin, 4, 7, 300, 80)
	assert.NoError(t, err)

	_, err = constraint.SectorExcl(3, origin, 7, 4, 0, 90)
	assert.ErrorIs(t, err, constraint.ErrInvalidConstraint, "inner beyond outer")

	_, err = constraint.SectorIncl(3, origin, -1, 4, 0, 90)
	assert.ErrorIs(t, err, constraint.ErrInvalidConstraint, "negative inner")
}

// TestFromRecord_RoundTrip converts a raw record and checks field carry-over.
func TestFromRecord_RoundTrip(t *testing.T) {
	c, err := constraint.FromRecord(constraint.Record{
		Ordinal: 7, Kind: "sector_include",
		Lat: origin.Lat, Lon: origin.Lon,
		InnerKm: 6.4, OuterKm: 11.3, StartDeg: 300, EndDeg: 80,
	})
	require.NoError(t, err)
	assert.Equal(t, constraint.KindSectorInclude, c.Kind)
	assert.Equal(t, 7, c.Ordinal)
	assert.InDelta(t, 6.4, c.InnerKm, 1e-12)
	assert.InDelta(t, 11.3, c.OuterKm, 1e-12)
}

// TestFromRecord_DefaultTolerance fills the documented 5° default when a
// bearing_ray record omits tolerance_deg.
func TestFromRecord_DefaultTolerance(t *testing.T) {
	c, err := constraint.FromRecord(constraint.Record{
		Ordinal: 4, Kind: "bearing_ray", Lat: origin.Lat, Lon: origin.Lon, BearingDeg: 90,
	})
	require.NoError(t, err)
	assert.InDelta(t, constraint.DefaultToleranceDeg, c.ToleranceDeg, 1e-12)
}

// TestFromRecord_UnknownKind surfaces ErrUnknownKind with the offending name.
func TestFromRecord_UnknownKind(t *testing.T) {
	_, err := constraint.FromRecord(constraint.Record{Ordinal: 1, Kind: "pentagon"})
	assert.ErrorIs(t, err, constraint.ErrUnknownKind)
	assert.Contains(t, err.Error(), "pentagon")
}

// TestKind_ParseString round-trips every vocabulary member.
func TestKind_ParseString(t *testing.T) {
	for _, k := range []constraint.Kind{
		constraint.KindCircleInclude,
		constraint.KindBearingRay,
		constraint.KindSectorExclude,
		constraint.KindSectorInclude,
	} {
		parsed, err := constraint.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}
