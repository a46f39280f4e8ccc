package report

import (
	"html/template"
	"io"

	"github.com/katalvlaran/geofence/narrow"
)

// mapTemplate is a single-file Leaflet page: feasible polygons in blue,
// centroid marker with the convergence summary popup.
var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>geofence — feasible region</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html,body,#map{height:100%;margin:0}</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], 10);
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
{{range .Polygons}}
L.polygon({{.}}, {color:'blue', weight:2, fillOpacity:0.25}).addTo(map);
{{end}}
L.marker([{{.CenterLat}}, {{.CenterLon}}]).addTo(map)
  .bindPopup({{.Popup}});
</script>
</body>
</html>
`))

// mapData is the template payload.
type mapData struct {
	CenterLat float64
	CenterLon float64
	Polygons  []template.JS
	Popup     string
}

// HTMLMap writes a self-contained Leaflet map of the current feasible
// region — the engine's stand-in for the hand-drawn search maps the clue
// sources publish.
func HTMLMap(w io.Writer, eng *narrow.Engine) error {
	snap, ok := eng.Snapshot()
	if !ok {
		snap = narrow.Snapshot{}
	}

	data := mapData{
		CenterLat: snap.Centroid.Lat,
		CenterLon: snap.Centroid.Lon,
		Popup:     popupText(eng, snap),
	}
	for _, ring := range eng.ExportRegions() {
		data.Polygons = append(data.Polygons, ringJS(ring))
	}

	return mapTemplate.Execute(w, data)
}
