package planar

import "math"

// clipHalfPlane clips the subject ring against the half-plane to the LEFT
// of the directed line a→b, boundary-inclusive: vertices with signed
// distance ≥ −eps are kept, so points on the line survive the cut.
// This is the Sutherland–Hodgman step; the subject may be non-convex.
//
// Returns nil when fewer than three vertices survive.
//
// Complexity: O(n).
func clipHalfPlane(subject Polygon, a, b XY, eps float64) Polygon {
	if len(subject) < minPolyVerts {
		return nil
	}

	var (
		out        Polygon
		n          = len(subject)
		prev       = subject[n-1]
		prevInside = signedDist(a, b, prev) >= -eps
		cur        XY
		curInside  bool
		i          int
	)
	for i = 0; i < n; i++ {
		cur = subject[i]
		curInside = signedDist(a, b, cur) >= -eps

		switch {
		case curInside && prevInside:
			out = append(out, cur)
		case curInside && !prevInside:
			out = append(out, lineIntersect(a, b, prev, cur), cur)
		case !curInside && prevInside:
			out = append(out, lineIntersect(a, b, prev, cur))
		}
		prev, prevInside = cur, curInside
	}

	if len(out) < minPolyVerts {
		return nil
	}

	return out
}

// ClipConvex returns subject ∩ clip, where clip must be convex; the
// subject may be any simple ring. The clip orientation is normalized to
// counter-clockwise internally. A nil result means the intersection is
// empty (or a sliver thinner than eps collapsed away).
//
// Errors: ErrFewVertices, ErrNotConvex.
//
// Complexity: O(n·e) for e clip edges.
func ClipConvex(subject, clip Polygon, eps float64) (Polygon, error) {
	if len(subject) < minPolyVerts || len(clip) < minPolyVerts {
		return nil, ErrFewVertices
	}
	if !clip.IsConvex(eps) {
		return nil, ErrNotConvex
	}

	var (
		cw  = ccw(clip)
		out = subject
		n   = len(cw)
		i   int
	)
	for i = 0; i < n; i++ {
		out = clipHalfPlane(out, cw[i], cw[(i+1)%n], eps)
		if out == nil {
			return nil, nil
		}
	}

	return out, nil
}

// SubtractConvex returns subject − clip as a set of interior-disjoint
// pieces. The decomposition walks the convex clip's edges: piece i is the
// part of the subject strictly beyond edge i but within edges 0..i−1.
// An empty result means the clip fully covered the subject.
//
// Errors: ErrFewVertices, ErrNotConvex.
//
// Complexity: O(n·e²) for e clip edges (e is small: 3–4 for the quads the
// sector builders emit).
func SubtractConvex(subject, clip Polygon, eps float64) ([]Polygon, error) {
	if len(subject) < minPolyVerts || len(clip) < minPolyVerts {
		return nil, ErrFewVertices
	}
	if !clip.IsConvex(eps) {
		return nil, ErrNotConvex
	}

	var (
		cw     = ccw(clip)
		n      = len(cw)
		pieces []Polygon
		piece  Polygon
		i, j   int
	)
	for i = 0; i < n; i++ {
		// Outside edge i: reverse the edge so "left of" means "beyond".
		// The exclusion keeps the clip closed, so the leftover piece is
		// clipped with a tightened tolerance to avoid double-counting the
		// shared boundary strip.
		piece = clipHalfPlane(subject, cw[(i+1)%n], cw[i], -eps)
		// Inside all previous edges keeps the pieces disjoint.
		for j = 0; j < i && piece != nil; j++ {
			piece = clipHalfPlane(piece, cw[j], cw[(j+1)%n], eps)
		}
		if piece != nil {
			pieces = append(pieces, piece)
		}
	}

	return pieces, nil
}

// ccw returns the ring in counter-clockwise orientation (reversing a copy
// when needed; the input is never mutated).
func ccw(pg Polygon) Polygon {
	if pg.SignedArea() >= 0 {
		return pg
	}

	var (
		out = make(Polygon, len(pg))
		i   int
	)
	for i = 0; i < len(pg); i++ {
		out[i] = pg[len(pg)-1-i]
	}

	return out
}

// signedDist returns the perpendicular signed distance of p from the
// directed line a→b: positive to the left.
func signedDist(a, b, p XY) float64 {
	var (
		dx = b.X - a.X
		dy = b.Y - a.Y
	)
	if dx == 0 && dy == 0 {
		return 0
	}

	return cross(a, b, p) / math.Hypot(dx, dy)
}

// lineIntersect returns the intersection of the infinite line a→b with
// segment p→q. Callers only invoke it when p and q straddle the line, so
// the denominator is bounded away from zero.
func lineIntersect(a, b, p, q XY) XY {
	var (
		d1 = cross(a, b, p)
		d2 = cross(a, b, q)
		t  = d1 / (d1 - d2)
	)

	return XY{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)}
}
