// Package constraint models geographic clues as typed, validated region
// predicates the narrowing engine can apply.
//
// What:
//
//   - Kind — the constraint vocabulary: CircleInclude, BearingRay,
//     SectorExclude, SectorInclude.
//   - Constraint — an ordinal-stamped value carrying the kind-specific
//     numeric fields (center/origin, radii, bearings, tolerance).
//   - Validating constructors (Circle, Ray, SectorExcl, SectorIncl) and
//     Constraint.Validate — every check runs before any engine mutation.
//   - Record / FromRecord — the raw-clue ingestion form external
//     collaborators hand over (YAML/JSON tagged).
//
// Semantics:
//
//   - Include kinds (CircleInclude, BearingRay, SectorInclude) intersect
//     with the feasible region; a clue never re-expands an already
//     excluded area.
//   - SectorExclude removes its annular wedge from the region.
//   - Wedges are closed: "within tolerance" includes the boundary.
//
// Validation rules:
//
//   - coordinates: lat ∈ [−90,90], lon ∈ [−180,180];
//   - radius_km > 0; 0 ≤ inner_km < outer_km;
//   - tolerance_deg ∈ [0,180]; bearings ∈ [0,360).
//
// Errors:
//
//   - ErrInvalidConstraint: a field failed validation (wrapped with the
//     field detail). Local and recoverable — skip or correct the clue.
//   - ErrUnknownKind: a Record names a kind outside the vocabulary.
package constraint
