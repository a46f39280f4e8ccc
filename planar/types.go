package planar

import (
	"errors"
	"math"
)

var (
	// ErrFewVertices indicates a polygon with fewer than three vertices
	// was passed where a proper polygon is required.
	ErrFewVertices = errors.New("planar: polygon needs at least three vertices")

	// ErrNotConvex indicates a clip polygon is not convex within tolerance;
	// ClipConvex and SubtractConvex accept convex clips only.
	ErrNotConvex = errors.New("planar: clip polygon must be convex")
)

// DefaultCircleSegments is the default vertex count for circle and arc
// discretization. 128 keeps polygon area within ~0.04% of πr².
const DefaultCircleSegments = 128

// minPolyVerts is the smallest vertex count forming a proper polygon.
const minPolyVerts = 3

// XY is a point on the local tangent plane, in kilometers.
// Immutable value type.
type XY struct {
	X float64 // east, km
	Y float64 // north, km
}

// Sub returns p − q.
func (p XY) Sub(q XY) XY { return XY{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the Euclidean distance from p to q in kilometers.
func (p XY) Dist(q XY) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// IsFinite reports whether both coordinates are finite numbers.
func (p XY) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Polygon is a simple closed ring of vertices. The closing edge from the
// last vertex back to the first is implicit (no duplicated endpoint).
// Orientation is not prescribed; measures use absolute values.
type Polygon []XY

// Box is an axis-aligned bounding rectangle on the tangent plane.
type Box struct {
	Min XY
	Max XY
}

// cross returns the z-component of (b−a) × (p−a): positive when p lies to
// the left of the directed line a→b.
func cross(a, b, p XY) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
