package planar

import "math"

// SignedArea returns the shoelace area of the ring: positive for
// counter-clockwise orientation, negative for clockwise.
//
// Complexity: O(n).
func (pg Polygon) SignedArea() float64 {
	if len(pg) < minPolyVerts {
		return 0
	}

	var (
		sum  float64
		j    = len(pg) - 1 // previous vertex index
		i    int
		a, b XY
	)
	for i = 0; i < len(pg); i++ {
		a, b = pg[j], pg[i]
		sum += a.X*b.Y - b.X*a.Y
		j = i
	}

	return sum / 2
}

// Area returns the absolute enclosed area in km².
func (pg Polygon) Area() float64 { return math.Abs(pg.SignedArea()) }

// Centroid returns the area centroid of the ring. Near-degenerate rings
// (area below tiny) fall back to the vertex mean so the result stays finite.
//
// Complexity: O(n).
func (pg Polygon) Centroid() XY {
	if len(pg) == 0 {
		return XY{}
	}

	const tiny = 1e-12

	var (
		a    = pg.SignedArea()
		cx   float64
		cy   float64
		j    = len(pg) - 1
		i    int
		w    float64
		p, q XY
	)
	if math.Abs(a) < tiny {
		// Vertex mean fallback for slivers and degenerate rings.
		for i = 0; i < len(pg); i++ {
			cx += pg[i].X
			cy += pg[i].Y
		}

		return XY{X: cx / float64(len(pg)), Y: cy / float64(len(pg))}
	}

	for i = 0; i < len(pg); i++ {
		p, q = pg[j], pg[i]
		w = p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * w
		cy += (p.Y + q.Y) * w
		j = i
	}

	return XY{X: cx / (6 * a), Y: cy / (6 * a)}
}

// Contains reports whether p lies inside the ring, boundary-inclusive:
// a point within eps kilometers of an edge counts as inside. Interior
// membership uses the even-odd (ray crossing) rule, so non-convex rings
// are handled.
//
// Complexity: O(n).
func (pg Polygon) Contains(p XY, eps float64) bool {
	if len(pg) < minPolyVerts {
		return false
	}

	var (
		inside bool
		j      = len(pg) - 1
		i      int
		a, b   XY
	)
	for i = 0; i < len(pg); i++ {
		a, b = pg[j], pg[i]
		// Boundary tolerance: closed region semantics.
		if distToSegment(p, a, b) <= eps {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			if p.X < a.X+(b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) {
				inside = !inside
			}
		}
		j = i
	}

	return inside
}

// Diameter returns the largest pairwise vertex distance in kilometers.
// For a convex or star-shaped ring this is the geometric diameter; for a
// general simple ring it is still attained at a vertex pair.
//
// Complexity: O(n²).
func (pg Polygon) Diameter() float64 {
	var (
		best float64
		d    float64
		i, j int
	)
	for i = 0; i < len(pg); i++ {
		for j = i + 1; j < len(pg); j++ {
			if d = pg[i].Dist(pg[j]); d > best {
				best = d
			}
		}
	}

	return best
}

// Bounds returns the axis-aligned bounding box of the ring.
func (pg Polygon) Bounds() Box {
	if len(pg) == 0 {
		return Box{}
	}

	var (
		b = Box{Min: pg[0], Max: pg[0]}
		i int
	)
	for i = 1; i < len(pg); i++ {
		b.Min.X = math.Min(b.Min.X, pg[i].X)
		b.Min.Y = math.Min(b.Min.Y, pg[i].Y)
		b.Max.X = math.Max(b.Max.X, pg[i].X)
		b.Max.Y = math.Max(b.Max.Y, pg[i].Y)
	}

	return b
}

// IsFinite reports whether every vertex is finite.
func (pg Polygon) IsFinite() bool {
	for _, v := range pg {
		if !v.IsFinite() {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the ring.
func (pg Polygon) Clone() Polygon {
	if pg == nil {
		return nil
	}
	out := make(Polygon, len(pg))
	copy(out, pg)

	return out
}

// IsConvex reports whether the ring is convex within eps: all cross
// products of consecutive edges share a sign (zeros tolerated).
//
// Complexity: O(n).
func (pg Polygon) IsConvex(eps float64) bool {
	if len(pg) < minPolyVerts {
		return false
	}

	var (
		sign float64
		c    float64
		n    = len(pg)
		i    int
	)
	for i = 0; i < n; i++ {
		c = cross(pg[i], pg[(i+1)%n], pg[(i+2)%n])
		if math.Abs(c) <= eps {
			continue // collinear run, ignore
		}
		if sign == 0 {
			sign = c

			continue
		}
		if sign*c < 0 {
			return false
		}
	}

	return true
}

// distToSegment returns the distance from p to segment ab.
func distToSegment(p, a, b XY) float64 {
	var (
		ab = b.Sub(a)
		ap = p.Sub(a)
		l2 = ab.X*ab.X + ab.Y*ab.Y
	)
	if l2 == 0 {
		return p.Dist(a)
	}

	t := (ap.X*ab.X + ap.Y*ab.Y) / l2
	t = math.Max(0, math.Min(1, t))

	return p.Dist(XY{X: a.X + t*ab.X, Y: a.Y + t*ab.Y})
}
