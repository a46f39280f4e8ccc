// Package narrow is the progressive geofence narrowing engine: it ingests
// an ordinal-ordered stream of constraints, keeps the feasible region
// tight, and reports convergence or contradiction.
//
// 🚀 What is narrow?
//
//	A reactive, single-writer engine over the geometry kernel:
//	  • Apply(constraint) — intersect (include kinds) or subtract
//	    (exclude kind) against the current region, transactionally.
//	  • Phase machine: Initialized → Narrowing → {Converged | Infeasible}.
//	  • Per-apply Snapshot (area, centroid, centroid drift,
//	    bounding diameter), retained as an append-only history.
//	  • Contradiction detection: an apply that empties the region flips
//	    the engine to Infeasible, keeps the last valid region for
//	    diagnostics, and records the offending ordinal.
//	  • ExportRegion — the feasible boundary as (lat, lon) points for
//	    external map rendering.
//
// ✨ Guarantees:
//
//   - Strict ordinal order: Apply rejects ordinal ≤ last applied
//     (ErrOutOfOrderConstraint); re-applying a day is never silently
//     double-counted.
//   - All-or-nothing applies: validation precedes mutation; degenerate
//     clipping rolls back with the region unchanged.
//   - Monotonic shrink: area never grows (includes intersect, excludes
//     subtract; nothing unions).
//   - Readers (Phase, Snapshot, History, Contains, ExportRegion) may run
//     concurrently between writes; Apply holds the single writer lock.
//
// ⚙️ Usage:
//
//	eng := narrow.New(narrow.WithConvergenceKm(2))
//	c, _ := constraint.Circle(1, geo.Point{Lat: 40.2153, Lon: -74.9070}, 95)
//	snap, err := eng.Apply(c)
//	if err != nil {
//	  // ErrInvalidConstraint / ErrOutOfOrderConstraint / ErrInfeasible / …
//	}
//	fmt.Println(snap.AreaKm2, eng.Phase())
//
// Phases:
//
//   - Initialized — no constraint applied yet; the region is the
//     configured bound (or the lazy default around the first clue).
//   - Narrowing — at least one constraint applied, region non-empty.
//   - Converged — bounding diameter fell below the configured threshold.
//   - Infeasible — the latest constraint contradicted the prior ones.
//     Both end states are terminal: further Apply returns ErrEngineTerminal.
//
// Errors:
//
//   - ErrOutOfOrderConstraint — ordinal ≤ last applied; rejected before mutation.
//   - ErrInfeasible — the constraint emptied the region (terminal state).
//   - ErrEngineTerminal — Apply after Converged or Infeasible.
//   - constraint.ErrInvalidConstraint — forwarded from validation.
//   - region.ErrDegenerateGeometry — clipping failure, state rolled back.
package narrow
