package geo

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrLatitudeRange indicates a latitude outside [−90, 90] degrees.
	ErrLatitudeRange = errors.New("geo: latitude out of range [-90, 90]")

	// ErrLongitudeRange indicates a longitude outside [−180, 180] degrees.
	ErrLongitudeRange = errors.New("geo: longitude out of range [-180, 180]")
)

const (
	// EarthRadiusKm is the mean Earth radius (IUGG R1).
	EarthRadiusKm = 6371.0088

	// KmPerMile converts statute miles to kilometers.
	KmPerMile = 1.609344

	// degToRad converts degrees to radians.
	degToRad = math.Pi / 180

	// fullTurnDeg is one full bearing turn.
	fullTurnDeg = 360.0
)

// Point is a geographic position in degrees. Immutable value type.
type Point struct {
	Lat float64
	Lon float64
}

// Validate checks coordinate ranges.
//
// Errors: ErrLatitudeRange, ErrLongitudeRange.
func (p Point) Validate() error {
	if p.Lat < -90 || p.Lat > 90 || math.IsNaN(p.Lat) {
		return fmt.Errorf("%w: %v", ErrLatitudeRange, p.Lat)
	}
	if p.Lon < -180 || p.Lon > 180 || math.IsNaN(p.Lon) {
		return fmt.Errorf("%w: %v", ErrLongitudeRange, p.Lon)
	}

	return nil
}

// String renders the point as "lat,lon" with six decimals (~0.1 m).
func (p Point) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lon)
}

// NormalizeBearing wraps a bearing into [0, 360).
func NormalizeBearing(deg float64) float64 {
	d := math.Mod(deg, fullTurnDeg)
	if d < 0 {
		d += fullTurnDeg
	}

	return d
}

// Distance returns the haversine great-circle distance between a and b
// in kilometers.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	var (
		la1  = a.Lat * degToRad
		la2  = b.Lat * degToRad
		dLat = (b.Lat - a.Lat) * degToRad
		dLon = (b.Lon - a.Lon) * degToRad
		s    = math.Sin(dLat/2)*math.Sin(dLat/2) +
			math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(s)))
}

// Bearing returns the initial great-circle bearing from a to b in
// degrees, normalized to [0, 360): 0 = north, 90 = east.
func Bearing(a, b Point) float64 {
	var (
		la1  = a.Lat * degToRad
		la2  = b.Lat * degToRad
		dLon = (b.Lon - a.Lon) * degToRad
		y    = math.Sin(dLon) * math.Cos(la2)
		x    = math.Cos(la1)*math.Sin(la2) - math.Sin(la1)*math.Cos(la2)*math.Cos(dLon)
	)

	return NormalizeBearing(math.Atan2(y, x) / degToRad)
}

// Destination returns the point reached from origin by travelling
// distKm kilometers along the given initial bearing.
func Destination(origin Point, bearingDeg, distKm float64) Point {
	var (
		la1 = origin.Lat * degToRad
		lo1 = origin.Lon * degToRad
		br  = bearingDeg * degToRad
		ad  = distKm / EarthRadiusKm
		la2 = math.Asin(math.Sin(la1)*math.Cos(ad) + math.Cos(la1)*math.Sin(ad)*math.Cos(br))
		lo2 = lo1 + math.Atan2(
			math.Sin(br)*math.Sin(ad)*math.Cos(la1),
			math.Cos(ad)-math.Sin(la1)*math.Sin(la2),
		)
	)

	return Point{Lat: la2 / degToRad, Lon: math.Mod(lo2/degToRad+540, 360) - 180}
}

// MilesToKm converts statute miles to kilometers.
func MilesToKm(mi float64) float64 { return mi * KmPerMile }

// KmToMiles converts kilometers to statute miles.
func KmToMiles(km float64) float64 { return km / KmPerMile }
