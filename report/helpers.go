package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/katalvlaran/geofence/geo"
	"github.com/katalvlaran/geofence/narrow"
)

// ringJS renders a boundary as a Leaflet [[lat,lon],…] array literal.
func ringJS(ring []geo.Point) template.JS {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range ring {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "[%.6f,%.6f]", p.Lat, p.Lon)
	}
	b.WriteByte(']')

	return template.JS(b.String())
}

// popupText summarizes convergence for the centroid marker.
func popupText(eng *narrow.Engine, snap narrow.Snapshot) string {
	return fmt.Sprintf("phase: %s | area: %.2f km² (%.2f mi²) | diameter: %.2f km",
		eng.Phase(), snap.AreaKm2, snap.AreaKm2/(geo.KmPerMile*geo.KmPerMile), snap.DiameterKm)
}
