// Package geo is the spherical half of the geometry kernel: geographic
// points, great-circle math, and a local tangent-plane projection.
//
// What:
//
//   - Point (latitude/longitude, degrees) — immutable value type with
//     range validation.
//   - Distance (haversine, km), Bearing (initial great-circle bearing),
//     Destination (point at bearing+distance), NormalizeBearing → [0,360).
//   - Projection — an equirectangular tangent-plane projection anchored at
//     a reference point, mapping Point ↔ planar.XY (kilometers).
//   - Miles↔kilometers helpers (clue sources often speak miles).
//
// Why:
//
//   - Geofence narrowing needs planar polygon clipping; the projection
//     flattens a ≤ ~200 km search neighborhood onto a plane where that
//     clipping is exact.
//
// Accuracy:
//
//	The equirectangular projection scales longitude by cos(anchor latitude).
//	Within 100 km of the anchor at mid-latitudes the induced distance error
//	stays under 0.1%, well inside the engine's ε budget; beyond ~200 km the
//	distortion grows and the projection should be re-anchored.
//
// Errors:
//
//   - ErrLatitudeRange: latitude outside [−90, 90].
//   - ErrLongitudeRange: longitude outside [−180, 180].
package geo
