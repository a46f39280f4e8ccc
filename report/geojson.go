package report

import (
	"encoding/json"

	"github.com/katalvlaran/geofence/narrow"
)

// GeoJSON structures — just enough of RFC 7946 for boundary export; the
// pack carries no GeoJSON library, so the three shapes are declared here.
type (
	featureCollection struct {
		Type     string    `json:"type"`
		Features []feature `json:"features"`
	}

	feature struct {
		Type       string         `json:"type"`
		Properties map[string]any `json:"properties"`
		Geometry   geometry       `json:"geometry"`
	}

	geometry struct {
		Type        string `json:"type"`
		Coordinates any    `json:"coordinates"`
	}
)

// GeoJSON renders the feasible region as a FeatureCollection: one Polygon
// feature per feasible polygon (GeoJSON [lon, lat] order, closed rings)
// and one Point feature for the current centroid. Returns a JSON document.
func GeoJSON(eng *narrow.Engine) ([]byte, error) {
	fc := featureCollection{Type: "FeatureCollection", Features: []feature{}}

	for i, ring := range eng.ExportRegions() {
		coords := make([][2]float64, 0, len(ring)+1)
		for _, p := range ring {
			coords = append(coords, [2]float64{p.Lon, p.Lat})
		}
		if len(coords) > 0 {
			coords = append(coords, coords[0]) // GeoJSON rings close explicitly
		}

		fc.Features = append(fc.Features, feature{
			Type:       "Feature",
			Properties: map[string]any{"role": "feasible-region", "index": i},
			Geometry:   geometry{Type: "Polygon", Coordinates: [][][2]float64{coords}},
		})
	}

	if snap, ok := eng.Snapshot(); ok {
		fc.Features = append(fc.Features, feature{
			Type: "Feature",
			Properties: map[string]any{
				"role":        "centroid",
				"area_km2":    snap.AreaKm2,
				"diameter_km": snap.DiameterKm,
				"phase":       snap.Phase.String(),
			},
			Geometry: geometry{
				Type:        "Point",
				Coordinates: [2]float64{snap.Centroid.Lon, snap.Centroid.Lat},
			},
		})
	}

	return json.MarshalIndent(fc, "", "  ")
}
