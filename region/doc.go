// Package region holds the feasible search space as a set of planar
// polygons and refines it transactionally.
//
// What:
//
//   - Region — interior-disjoint polygon set on the tangent plane plus the
//     numeric policy (ε, minimum sliver area) every refinement honors.
//   - Intersect(pieces) — region ∩ (piece₁ ∪ piece₂ ∪ …); pieces must be
//     convex and interior-disjoint (the shape builders guarantee both).
//   - Subtract(pieces) — region − (piece₁ ∪ piece₂ ∪ …).
//   - Measures: Area, Centroid (area-weighted), Contains, IsEmpty,
//     Diameter, Bounds, Vertices, Largest.
//
// Transactional contract:
//
//	Every refinement is all-or-nothing. The new polygon set is built on
//	the side and validated (finite vertices only); on
//	ErrDegenerateGeometry the prior state is retained unchanged. Slivers
//	below the minimum area are dropped so floating-point micro-regions
//	never accumulate. An empty result is a valid outcome here — the
//	narrowing engine turns it into its Infeasible state.
//
// Concurrency:
//
//	Region itself is not synchronized; the engine serializes writers and
//	lets readers share a snapshot between writes.
//
// Complexity:
//
//   - Intersect: O(P·K·n·e) for P region polygons, K pieces.
//   - Subtract: O(P·K·n·e²); e is a small constant (quads and pies).
//   - Measures: O(total vertices), Diameter O(V²).
//
// Errors:
//
//   - ErrDegenerateGeometry: clipping produced non-finite vertices; the
//     apply was rolled back.
package region
