package planar

import "math"

// maxConvexSweepDeg is the widest central angle a single pie piece may
// span and remain convex once the arc is chorded.
const maxConvexSweepDeg = 180.0

// fullSweepDeg is a full turn of bearing sweep.
const fullSweepDeg = 360.0

// BearingVec returns the unit direction for a compass bearing:
// 0° → (0,1) north, 90° → (1,0) east, clockwise.
func BearingVec(bearingDeg float64) XY {
	r := bearingDeg * math.Pi / 180

	return XY{X: math.Sin(r), Y: math.Cos(r)}
}

// Circle discretizes a circle of radius r (km) around center into a convex
// counter-clockwise ring with the given number of segments (minimum 3;
// DefaultCircleSegments when ≤ 0).
//
// Complexity: O(segments).
func Circle(center XY, r float64, segments int) Polygon {
	if segments <= 0 {
		segments = DefaultCircleSegments
	}
	if segments < minPolyVerts {
		segments = minPolyVerts
	}

	var (
		out = make(Polygon, segments)
		a   float64
		i   int
	)
	for i = 0; i < segments; i++ {
		a = 2 * math.Pi * float64(i) / float64(segments)
		out[i] = XY{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}

	return out
}

// BoxRing returns the rectangle b as a counter-clockwise ring.
func BoxRing(b Box) Polygon {
	return Polygon{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
	}
}

// Sector decomposes an annular wedge (inner ≤ radius ≤ outer km, bearings
// swept clockwise from startDeg to endDeg) into convex, interior-disjoint
// pieces: one quad per arc step (triangular pies when inner is zero).
// A zero sweep (startDeg == endDeg after normalization) means a full ring.
//
// segments is the vertex count a full circle would get; the sector receives
// a proportional share, at least one step.
//
// Complexity: O(steps).
func Sector(center XY, inner, outer, startDeg, endDeg float64, segments int) []Polygon {
	if segments <= 0 {
		segments = DefaultCircleSegments
	}

	var sweep = math.Mod(endDeg-startDeg, fullSweepDeg)
	if sweep < 0 {
		sweep += fullSweepDeg
	}
	if sweep == 0 {
		sweep = fullSweepDeg
	}

	var (
		steps = int(math.Ceil(sweep / fullSweepDeg * float64(segments)))
		out   []Polygon
		b0    float64
		b1    float64
		i     int
	)
	if steps < 1 {
		steps = 1
	}

	out = make([]Polygon, 0, steps)
	for i = 0; i < steps; i++ {
		b0 = startDeg + sweep*float64(i)/float64(steps)
		b1 = startDeg + sweep*float64(i+1)/float64(steps)
		out = append(out, sectorStep(center, inner, outer, b0, b1))
	}

	return out
}

// Wedge builds the pie for a bearing ray constraint: directions within
// bearingDeg ± toleranceDeg from origin, range capped at maxRange km.
// Central angles above 180° are split into convex, interior-disjoint
// halves; a tolerance of 180° degenerates to the full disc.
//
// Complexity: O(segments).
func Wedge(origin XY, bearingDeg, toleranceDeg, maxRange float64, segments int) []Polygon {
	var total = 2 * toleranceDeg
	if total >= fullSweepDeg {
		return []Polygon{Circle(origin, maxRange, segments)}
	}

	var (
		parts = int(math.Ceil(total / maxConvexSweepDeg))
		start = bearingDeg - toleranceDeg
		out   []Polygon
		b0    float64
		b1    float64
		i     int
	)
	if parts < 1 {
		parts = 1
	}

	out = make([]Polygon, 0, parts)
	for i = 0; i < parts; i++ {
		b0 = start + total*float64(i)/float64(parts)
		b1 = start + total*float64(i+1)/float64(parts)
		out = append(out, pie(origin, maxRange, b0, b1, segments))
	}

	return out
}

// sectorStep builds one convex piece of an annulus between bearings b0→b1
// (clockwise, b1−b0 ≤ 360/steps which is well under 180°).
func sectorStep(center XY, inner, outer, b0, b1 float64) Polygon {
	var (
		v0 = BearingVec(b0)
		v1 = BearingVec(b1)
	)
	if inner <= 0 {
		// Triangular pie: center plus the outer chord.
		return Polygon{
			center,
			{X: center.X + outer*v0.X, Y: center.Y + outer*v0.Y},
			{X: center.X + outer*v1.X, Y: center.Y + outer*v1.Y},
		}
	}

	// Annular quad (isosceles trapezoid): convex for any step < 180°.
	return Polygon{
		{X: center.X + inner*v0.X, Y: center.Y + inner*v0.Y},
		{X: center.X + outer*v0.X, Y: center.Y + outer*v0.Y},
		{X: center.X + outer*v1.X, Y: center.Y + outer*v1.Y},
		{X: center.X + inner*v1.X, Y: center.Y + inner*v1.Y},
	}
}

// pie builds a convex circular sector from b0 to b1 (≤ 180° sweep) with an
// arc sampled proportionally to segments.
func pie(origin XY, r, b0, b1 float64, segments int) Polygon {
	if segments <= 0 {
		segments = DefaultCircleSegments
	}

	var (
		sweep = b1 - b0
		steps = int(math.Ceil(sweep / fullSweepDeg * float64(segments)))
		out   Polygon
		v     XY
		b     float64
		i     int
	)
	if steps < 2 {
		steps = 2
	}

	out = make(Polygon, 0, steps+2)
	out = append(out, origin)
	for i = 0; i <= steps; i++ {
		b = b0 + sweep*float64(i)/float64(steps)
		v = BearingVec(b)
		out = append(out, XY{X: origin.X + r*v.X, Y: origin.Y + r*v.Y})
	}

	return out
}
