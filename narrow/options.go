// Package narrow: functional configuration for the engine. This file
// defines the documented defaults, the Option type, and the WithX
// constructors with strict validation (panic on nonsensical values —
// programmer error, never clue data).
package narrow

import (
	"math"

	"github.com/katalvlaran/geofence/geo"
	"github.com/katalvlaran/geofence/planar"
)

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultConvergenceKm is the bounding diameter below which the
	// engine declares Converged: a ~2 km neighborhood is a searchable
	// target area.
	DefaultConvergenceKm = 2.0

	// DefaultMaxRangeKm caps the unbounded range of a BearingRay wedge.
	// It matches the projection's validity radius.
	DefaultMaxRangeKm = 200.0

	// DefaultCircleVertices is the circle/arc discretization density.
	DefaultCircleVertices = planar.DefaultCircleSegments

	// DefaultEpsilonKm is the boundary tolerance (~1 m).
	DefaultEpsilonKm = 1e-3

	// DefaultMinSliverKm2 drops floating-point micro-regions.
	DefaultMinSliverKm2 = 1e-4

	// DefaultBoundHalfExtentKm is the half-side of the lazy initial
	// bounding square centered on the first constraint's origin, used
	// when no explicit bound was configured.
	DefaultBoundHalfExtentKm = 250.0
)

// Internal panic messages (programmer errors only).
const (
	panicConvergenceInvalid = "narrow: WithConvergenceKm: threshold must be finite, > 0"
	panicMaxRangeInvalid    = "narrow: WithMaxRangeKm: range must be finite, > 0"
	panicVerticesInvalid    = "narrow: WithCircleVertices: need at least 8 vertices"
	panicEpsilonInvalid     = "narrow: WithEpsilonKm: eps must be finite, > 0"
	panicSliverInvalid      = "narrow: WithMinSliverKm2: threshold must be finite, > 0"
	panicBoundInvalid       = "narrow: WithBound: invalid corner coordinates"
)

// minCircleVertices is the coarsest discretization still resembling a circle.
const minCircleVertices = 8

// Option mutates engine options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective engine configuration. Fields are
// unexported; public entry points accept ...Option.
type Options struct {
	convergenceKm  float64
	maxRangeKm     float64
	circleVertices int
	epsKm          float64
	minSliverKm2   float64

	// Explicit initial bound; nil means lazy default around the first
	// constraint's origin.
	bound *[2]geo.Point
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		convergenceKm:  DefaultConvergenceKm,
		maxRangeKm:     DefaultMaxRangeKm,
		circleVertices: DefaultCircleVertices,
		epsKm:          DefaultEpsilonKm,
		minSliverKm2:   DefaultMinSliverKm2,
	}
}

// gatherOptions applies setters over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithConvergenceKm sets the bounding diameter (km) below which the
// engine transitions to Converged. Panics on non-positive or non-finite
// values.
func WithConvergenceKm(km float64) Option {
	if km <= 0 || math.IsNaN(km) || math.IsInf(km, 0) {
		panic(panicConvergenceInvalid)
	}

	return func(o *Options) { o.convergenceKm = km }
}

// WithMaxRangeKm sets the range cap applied to BearingRay wedges.
// Panics on non-positive or non-finite values.
func WithMaxRangeKm(km float64) Option {
	if km <= 0 || math.IsNaN(km) || math.IsInf(km, 0) {
		panic(panicMaxRangeInvalid)
	}

	return func(o *Options) { o.maxRangeKm = km }
}

// WithCircleVertices sets the circle/arc discretization density (full
// circle vertex count). Panics below 8.
func WithCircleVertices(n int) Option {
	if n < minCircleVertices {
		panic(panicVerticesInvalid)
	}

	return func(o *Options) { o.circleVertices = n }
}

// WithEpsilonKm sets the boundary tolerance in kilometers. Panics on
// non-positive or non-finite values.
func WithEpsilonKm(eps float64) Option {
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.epsKm = eps }
}

// WithMinSliverKm2 sets the minimum polygon area (km²) kept after a
// refinement. Panics on non-positive or non-finite values.
func WithMinSliverKm2(km2 float64) Option {
	if km2 <= 0 || math.IsNaN(km2) || math.IsInf(km2, 0) {
		panic(panicSliverInvalid)
	}

	return func(o *Options) { o.minSliverKm2 = km2 }
}

// WithBound sets the explicit initial bounding box (south-west and
// north-east corners). The projection anchors at its center. Panics when
// either corner is out of coordinate range or the corners are not
// strictly ordered.
func WithBound(sw, ne geo.Point) Option {
	if sw.Validate() != nil || ne.Validate() != nil || sw.Lat >= ne.Lat || sw.Lon >= ne.Lon {
		panic(panicBoundInvalid)
	}

	return func(o *Options) { o.bound = &[2]geo.Point{sw, ne} }
}
