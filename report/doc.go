// Package report renders engine state for external collaborators: a text
// convergence report, a GeoJSON boundary export, and a self-contained
// Leaflet HTML map.
//
// What:
//
//   - Text — per-day convergence table (area in km² and mi², bounding
//     diameter, centroid drift) plus the phase line and, when infeasible,
//     the contradiction account.
//   - GeoJSON — FeatureCollection with one Polygon feature per feasible
//     polygon and a Point feature for the centroid, ready for any map
//     renderer.
//   - HTMLMap — a single-file Leaflet page drawing the feasible
//     boundaries and centroid marker.
//
// Why:
//
//	The engine owns no presentation; persistence and rendering are the
//	reporting collaborator's job. This package is that collaborator for
//	the bundled CLI and a template for embedding.
//
// All functions are read-only over the engine's query interface; nothing
// here mutates engine state.
package report
