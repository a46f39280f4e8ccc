package narrow

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/geofence/constraint"
	"github.com/katalvlaran/geofence/geo"
	"github.com/katalvlaran/geofence/planar"
	"github.com/katalvlaran/geofence/region"
)

// Engine is the progressive narrowing state machine. Create with New;
// feed with Apply in strictly increasing ordinal order; inspect with the
// read accessors. One engine per search scenario — engines share no
// state, so independent scenarios never interfere.
type Engine struct {
	mu   sync.RWMutex
	opts Options

	phase   Phase
	proj    *geo.Projection
	reg     *region.Region
	history []Snapshot
	cause   *Contradiction

	lastOrdinal int
	started     bool
}

// New builds an engine in PhaseInitialized. When WithBound was given the
// region and projection are ready immediately; otherwise both anchor
// lazily at the first applied constraint's origin.
func New(opts ...Option) *Engine {
	e := &Engine{opts: gatherOptions(opts...)}
	if e.opts.bound != nil {
		e.initAt(midpoint(e.opts.bound[0], e.opts.bound[1]))
	}

	return e
}

// Apply ingests one constraint: validate → order-check → intersect or
// subtract → snapshot. All-or-nothing; see the package doc for the error
// contract.
func (e *Engine) Apply(c constraint.Constraint) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase.Terminal() {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrEngineTerminal, e.phase)
	}
	// Validation strictly precedes any mutation.
	if err := c.Validate(); err != nil {
		return Snapshot{}, err
	}
	if e.started && c.Ordinal <= e.lastOrdinal {
		return Snapshot{}, fmt.Errorf("%w: ordinal %d ≤ last applied %d",
			ErrOutOfOrderConstraint, c.Ordinal, e.lastOrdinal)
	}

	// Lazy bound: anchor projection and region at the first clue's origin.
	if e.proj == nil {
		e.initAt(c.Center)
	}

	// Work on a clone so infeasibility and degeneracy keep the prior
	// region intact for diagnostics.
	var (
		next   = e.reg.Clone()
		pieces = e.materialize(c)
		err    error
	)
	if c.Kind.Include() {
		err = next.Intersect(pieces)
	} else {
		err = next.Subtract(pieces)
	}
	if err != nil {
		return Snapshot{}, err // rolled back, phase unchanged
	}

	if next.IsEmpty() {
		e.phase = PhaseInfeasible
		e.cause = &Contradiction{
			Ordinal:    c.Ordinal,
			Constraint: c,
			Description: fmt.Sprintf("constraint %s excludes the entire remaining region (%.3f km² before)",
				c, e.reg.Area()),
		}

		return Snapshot{}, fmt.Errorf("%w: ordinal %d", ErrInfeasible, c.Ordinal)
	}

	// Commit.
	e.reg = next
	e.lastOrdinal = c.Ordinal
	e.started = true
	e.phase = PhaseNarrowing
	if next.Diameter() < e.opts.convergenceKm {
		e.phase = PhaseConverged
	}

	snap := e.snapshot(c)
	e.history = append(e.history, snap)

	return snap, nil
}

// ApplyRecord converts a raw ingestion record and applies it.
func (e *Engine) ApplyRecord(r constraint.Record) (Snapshot, error) {
	c, err := constraint.FromRecord(r)
	if err != nil {
		return Snapshot{}, err
	}

	return e.Apply(c)
}

// Phase returns the current state machine phase.
func (e *Engine) Phase() Phase {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.phase
}

// Snapshot returns the latest convergence snapshot; ok is false before
// the first successful Apply.
func (e *Engine) Snapshot() (Snapshot, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.history) == 0 {
		return Snapshot{}, false
	}

	return e.history[len(e.history)-1], true
}

// History returns a copy of the append-only snapshot sequence.
func (e *Engine) History() []Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Snapshot, len(e.history))
	copy(out, e.history)

	return out
}

// Cause returns the recorded contradiction, or nil while feasible.
func (e *Engine) Cause() *Contradiction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.cause == nil {
		return nil
	}

	c := *e.cause

	return &c
}

// Contains reports whether a geographic point is still feasible.
// False before the first Apply when no bound was configured.
func (e *Engine) Contains(p geo.Point) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.proj == nil {
		return false
	}

	return e.reg.Contains(e.proj.Project(p))
}

// ExportRegion returns the boundary of the largest feasible polygon as an
// ordered (lat, lon) sequence for external rendering. Nil when nothing
// is initialized or feasible.
func (e *Engine) ExportRegion() []geo.Point {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.proj == nil {
		return nil
	}

	largest := e.reg.Largest()
	if largest == nil {
		return nil
	}

	return e.proj.UnprojectRing(largest)
}

// ExportRegions returns every feasible polygon boundary in (lat, lon).
func (e *Engine) ExportRegions() [][]geo.Point {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.proj == nil {
		return nil
	}

	var (
		polys = e.reg.Vertices()
		out   = make([][]geo.Point, len(polys))
	)
	for i, p := range polys {
		out[i] = e.proj.UnprojectRing(p)
	}

	return out
}

// Projection exposes the engine's tangent-plane projection (nil before
// lazy initialization). Read-only collaborators use it to re-project
// exported boundaries.
func (e *Engine) Projection() *geo.Projection {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.proj
}

// initAt anchors the projection at center and builds the initial region:
// the configured bound, or the default square around center.
// Caller holds the write lock (or runs in New before publication).
func (e *Engine) initAt(center geo.Point) {
	// Anchor coordinates were validated upstream (constraint / WithBound).
	e.proj, _ = geo.NewProjection(center)

	var ring planar.Polygon
	if b := e.opts.bound; b != nil {
		ring = planar.BoxRing(planar.Box{
			Min: e.proj.Project(b[0]),
			Max: e.proj.Project(b[1]),
		})
	} else {
		h := DefaultBoundHalfExtentKm
		ring = planar.BoxRing(planar.Box{
			Min: planar.XY{X: -h, Y: -h},
			Max: planar.XY{X: h, Y: h},
		})
	}

	e.reg = region.New([]planar.Polygon{ring}, e.opts.epsKm, e.opts.minSliverKm2)
}

// materialize converts a validated constraint into convex planar pieces.
func (e *Engine) materialize(c constraint.Constraint) []planar.Polygon {
	origin := e.proj.Project(c.Center)

	switch c.Kind {
	case constraint.KindCircleInclude:
		return []planar.Polygon{planar.Circle(origin, c.RadiusKm, e.opts.circleVertices)}
	case constraint.KindBearingRay:
		return planar.Wedge(origin, c.BearingDeg, c.ToleranceDeg, e.opts.maxRangeKm, e.opts.circleVertices)
	default: // sector include / exclude share the shape
		return planar.Sector(origin, c.InnerKm, c.OuterKm, c.StartDeg, c.EndDeg, e.opts.circleVertices)
	}
}

// snapshot derives the convergence record for the just-committed apply.
// Caller holds the write lock.
func (e *Engine) snapshot(c constraint.Constraint) Snapshot {
	var (
		centroid = e.proj.Unproject(e.reg.Centroid())
		drift    float64
	)
	if len(e.history) > 0 {
		drift = geo.Distance(e.history[len(e.history)-1].Centroid, centroid)
	}

	return Snapshot{
		Ordinal:         c.Ordinal,
		Kind:            c.Kind,
		AreaKm2:         e.reg.Area(),
		Centroid:        centroid,
		CentroidDriftKm: drift,
		DiameterKm:      e.reg.Diameter(),
		Polygons:        e.reg.Count(),
		Vertices:        e.reg.VertexCount(),
		Phase:           e.phase,
	}
}

// midpoint returns the box center for projection anchoring.
func midpoint(sw, ne geo.Point) geo.Point {
	return geo.Point{Lat: (sw.Lat + ne.Lat) / 2, Lon: (sw.Lon + ne.Lon) / 2}
}
