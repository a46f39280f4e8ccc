// Package planar is the flat-plane half of the geometry kernel: polygons,
// measures, and convex clipping on a local tangent plane (kilometers).
//
// What:
//
//   - XY / Polygon primitives with shoelace Area, Centroid, Diameter,
//     boundary-inclusive Contains, and bounding boxes.
//   - Half-plane clipping (the Sutherland–Hodgman step) as the single
//     geometric primitive everything else is built from.
//   - ClipConvex — subject ∩ convex clip (subject may be non-convex).
//   - SubtractConvex — subject − convex clip via the half-plane
//     decomposition; returns interior-disjoint pieces.
//   - Shape builders: Circle, Box, Sector (annular wedge as convex quads),
//     Wedge (bearing ± tolerance pie, split convex when wider than 180°).
//
// Why:
//
//   - Geofence narrowing reduces every clue to "intersect with a union of
//     convex pieces" or "subtract a union of convex pieces", so a single
//     robust half-plane clipper covers the whole constraint vocabulary.
//   - Convex-only clip shapes keep the clipper free of the intersection
//     bookkeeping a general Weiler–Atherton implementation needs.
//
// Bearing convention:
//
//	0° = +Y (north), 90° = +X (east), increasing clockwise — compass
//	bearings, not math angles. See BearingVec.
//
// Numeric policy:
//
//   - All predicates take an ε (kilometers). Boundary points are inside:
//     half-plane clipping keeps signed distance ≥ −ε, so wedges are closed.
//   - Builders and clippers never produce NaN/±Inf vertices from finite
//     input; callers drop sliver output below a minimum-area threshold.
//
// Complexity:
//
//   - Area/Centroid/Contains: O(n).
//   - Diameter: O(n²) over vertices (polygons here are ≤ a few hundred).
//   - ClipConvex: O(n·e) for e clip edges; SubtractConvex: O(n·e²).
//
// Errors:
//
//   - ErrFewVertices: a polygon operation needs ≥ 3 vertices.
//   - ErrNotConvex: a clip polygon fed to ClipConvex/SubtractConvex
//     is not convex within ε.
package planar
