package narrow_test

import (
	"fmt"

	"github.com/katalvlaran/geofence/constraint"
	"github.com/katalvlaran/geofence/geo"
	"github.com/katalvlaran/geofence/narrow"
)

// ExampleEngine demonstrates the full narrowing loop of a small search
// scenario: a 95 km inclusion circle, a tighter 90 km circle, then an
// eastward bearing wedge.
//
// Scenario:
//
//	Day 1 — "within 95 km of the bridge"      → CircleInclude
//	Day 2 — "within 90 km of the overlook"    → CircleInclude
//	Day 3 — "due east of the tower, ±5°"      → BearingRay
//
// Each apply yields a Snapshot; the engine phase reports
// whether the search is still narrowing.
func ExampleEngine() {
	eng := narrow.New()

	day1, _ := constraint.Circle(1, geo.Point{Lat: 40.2153, Lon: -74.9070}, 95)
	day2, _ := constraint.Circle(2, geo.Point{Lat: 40.2189, Lon: -74.8857}, 90)
	day3, _ := constraint.Ray(3, geo.Point{Lat: 40.2493, Lon: -74.8150}, 90, 5)

	for _, c := range []constraint.Constraint{day1, day2, day3} {
		snap, err := eng.Apply(c)
		if err != nil {
			fmt.Println("apply failed:", err)

			return
		}
		fmt.Printf("day %d: %s, shrink to %.0f%%\n",
			snap.Ordinal, eng.Phase(), 100*snap.AreaKm2/firstArea(eng))
	}

	// Output:
	// day 1: narrowing, shrink to 100%
	// day 2: narrowing, shrink to 90%
	// day 3: narrowing, shrink to 2%
}

// firstArea returns the area recorded by the first snapshot.
func firstArea(eng *narrow.Engine) float64 {
	return eng.History()[0].AreaKm2
}
