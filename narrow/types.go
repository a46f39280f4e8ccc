package narrow

import (
	"errors"

	"github.com/katalvlaran/geofence/constraint"
	"github.com/katalvlaran/geofence/geo"
)

var (
	// ErrOutOfOrderConstraint indicates an ordinal at or below the last
	// applied one. Recoverable: rejected before any mutation.
	ErrOutOfOrderConstraint = errors.New("narrow: constraint ordinal out of order")

	// ErrInfeasible indicates the applied constraint excluded the entire
	// remaining region. The engine transitions to PhaseInfeasible and
	// keeps the last valid region for diagnosis.
	ErrInfeasible = errors.New("narrow: constraint contradicts prior constraints")

	// ErrEngineTerminal indicates Apply was called after the engine
	// reached Converged or Infeasible. Check Phase before continuing.
	ErrEngineTerminal = errors.New("narrow: engine reached a terminal phase")
)

// Phase is the engine's state machine position.
type Phase uint8

const (
	// PhaseInitialized — engine created, no constraint applied.
	PhaseInitialized Phase = iota

	// PhaseNarrowing — constraints applied, region non-empty, not yet
	// converged.
	PhaseNarrowing

	// PhaseConverged — bounding diameter below the convergence threshold;
	// terminal.
	PhaseConverged

	// PhaseInfeasible — latest constraint contradicted prior ones;
	// terminal.
	PhaseInfeasible
)

// phaseNames maps phases to display names.
var phaseNames = [...]string{"initialized", "narrowing", "converged", "infeasible"}

// String returns the phase display name.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}

	return "unknown"
}

// Terminal reports whether the phase accepts no further constraints.
func (p Phase) Terminal() bool { return p == PhaseConverged || p == PhaseInfeasible }

// Snapshot is the read-only convergence record produced by each
// successful Apply. History keeps them append-only, ordered by ordinal.
type Snapshot struct {
	// Ordinal of the constraint that produced this snapshot.
	Ordinal int

	// Kind of that constraint.
	Kind constraint.Kind

	// AreaKm2 of the feasible region after the apply.
	AreaKm2 float64

	// Centroid of the feasible region (area-weighted).
	Centroid geo.Point

	// CentroidDriftKm is the distance from the previous snapshot's
	// centroid (zero for the first snapshot).
	CentroidDriftKm float64

	// DiameterKm is the bounding diameter convergence is judged on.
	DiameterKm float64

	// Polygons and Vertices describe region complexity after the apply.
	Polygons int
	Vertices int

	// Phase the engine was in immediately after recording this snapshot.
	Phase Phase
}

// Feasible reports whether the region was non-empty at this snapshot.
// Snapshots are only recorded for feasible states, so this is a
// convenience mirror of the phase.
func (s Snapshot) Feasible() bool { return s.Phase != PhaseInfeasible }

// Contradiction describes why the engine became infeasible.
type Contradiction struct {
	// Ordinal of the offending constraint.
	Ordinal int

	// Constraint is the offending clue itself.
	Constraint constraint.Constraint

	// Description is a human-readable account, e.g.
	// "constraint #9 (sector_exclude …) excludes the entire remaining region".
	Description string
}
