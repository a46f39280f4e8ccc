// Package geofence is your in-memory engine for progressive geographic
// narrowing — turning a stream of clues into an ever-tighter feasible
// search region.
//
// 🚀 What is geofence?
//
//	A modern, single-writer, testify-tested library that brings together:
//		• Geometry kernel: great-circle math, a local tangent-plane
//		  projection, and robust convex polygon clipping
//		• Constraint vocabulary: inclusion circles, bearing wedges, and
//		  annular scan/elimination sectors
//		• Region representation: a transactional polygon set with area,
//		  centroid, containment and bounding-diameter measures
//		• Narrowing engine: strict ordinal ingestion, contradiction
//		  detection, convergence tracking, append-only snapshot history
//		• Reporting: text convergence tables, GeoJSON export, Leaflet maps
//
// ✨ Why choose geofence?
//
//   - Deterministic – no global state; one engine per search scenario
//   - Rock-solid guarantees – all-or-nothing applies, monotonic shrink
//   - Pure Go core – clipping and projection with no cgo, no GIS stack
//   - Honest about contradictions – an impossible clue is a first-class
//     Infeasible state with the offending ordinal surfaced, never a panic
//
// Under the hood, everything is organized under six subpackages:
//
//	geo/        — points, haversine distance, bearings, tangent-plane projection
//	planar/     — polygons, measures, convex clipping, shape builders
//	constraint/ — typed clue model with validation and raw-record ingestion
//	region/     — the feasible polygon set with transactional refinement
//	narrow/     — the ordinal-ordered narrowing engine and snapshot history
//	report/     — text/GeoJSON/Leaflet renderings for external collaborators
//
// Quick narrowing sketch:
//
//	day 1: circle(95 km)        →  28,000 km² feasible
//	day 2: circle(90 km)        →  25,000 km²
//	day 3: bearing 90° ± 5°     →     600 km², still narrowing
//
// Dive into the per-package docs for contracts, complexity notes and
// worked examples, or run cmd/geofence over a YAML clue file.
//
//	go get github.com/katalvlaran/geofence
package geofence
