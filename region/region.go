package region

import (
	"errors"
	"math"

	"github.com/katalvlaran/geofence/planar"
)

// ErrDegenerateGeometry indicates polygon clipping produced an invalid
// result (non-finite vertices). The refinement that hit it was rolled
// back; the region is unchanged and remains usable.
var ErrDegenerateGeometry = errors.New("region: clipping produced degenerate geometry")

const (
	// DefaultEpsilonKm is the boundary tolerance for point predicates,
	// roughly one meter on the ground.
	DefaultEpsilonKm = 1e-3

	// DefaultMinSliverKm2 is the smallest polygon area kept after a
	// refinement; anything smaller is a floating-point sliver.
	DefaultMinSliverKm2 = 1e-4
)

// Region is the feasible search space: interior-disjoint polygons on the
// local tangent plane. Construct with New; refine with Intersect and
// Subtract. Not synchronized — see the package doc.
type Region struct {
	polys     []planar.Polygon
	eps       float64
	minSliver float64
}

// New builds a region from an initial polygon set (typically a single
// bounding box ring). Non-positive eps or minSliver fall back to the
// package defaults.
func New(initial []planar.Polygon, eps, minSliver float64) *Region {
	if eps <= 0 {
		eps = DefaultEpsilonKm
	}
	if minSliver <= 0 {
		minSliver = DefaultMinSliverKm2
	}

	r := &Region{eps: eps, minSliver: minSliver}
	for _, p := range initial {
		if p.Area() >= minSliver {
			r.polys = append(r.polys, p.Clone())
		}
	}

	return r
}

// Clone returns an independent deep copy sharing no vertex storage.
func (r *Region) Clone() *Region {
	out := &Region{eps: r.eps, minSliver: r.minSliver}
	out.polys = make([]planar.Polygon, len(r.polys))
	for i, p := range r.polys {
		out.polys[i] = p.Clone()
	}

	return out
}

// Intersect refines the region to region ∩ (∪ pieces). Pieces must be
// convex and interior-disjoint. All-or-nothing: on error the region is
// unchanged.
//
// Errors: ErrDegenerateGeometry, planar.ErrNotConvex, planar.ErrFewVertices.
func (r *Region) Intersect(pieces []planar.Polygon) error {
	var (
		next []planar.Polygon
		out  planar.Polygon
		err  error
	)
	for _, subject := range r.polys {
		for _, piece := range pieces {
			out, err = planar.ClipConvex(subject, piece, r.eps)
			if err != nil {
				return err
			}
			if out == nil {
				continue
			}
			if !out.IsFinite() {
				return ErrDegenerateGeometry
			}
			if out.Area() >= r.minSliver {
				next = append(next, out)
			}
		}
	}

	r.polys = next

	return nil
}

// Subtract refines the region to region − (∪ pieces). Pieces must be
// convex. All-or-nothing: on error the region is unchanged.
//
// Errors: ErrDegenerateGeometry, planar.ErrNotConvex, planar.ErrFewVertices.
func (r *Region) Subtract(pieces []planar.Polygon) error {
	var (
		cur  = r.polys
		next []planar.Polygon
		outs []planar.Polygon
		err  error
	)
	for _, piece := range pieces {
		// Fresh slice per piece: the prior state must stay intact until
		// the whole refinement commits.
		next = nil
		for _, subject := range cur {
			outs, err = planar.SubtractConvex(subject, piece, r.eps)
			if err != nil {
				return err
			}
			for _, out := range outs {
				if !out.IsFinite() {
					return ErrDegenerateGeometry
				}
				if out.Area() >= r.minSliver {
					next = append(next, out)
				}
			}
		}
		cur = next
	}

	r.polys = cur

	return nil
}

// Area returns the total feasible area in km².
func (r *Region) Area() float64 {
	var sum float64
	for _, p := range r.polys {
		sum += p.Area()
	}

	return sum
}

// Centroid returns the area-weighted centroid of the polygon set.
// The zero XY is returned for an empty region.
func (r *Region) Centroid() planar.XY {
	var (
		sumA float64
		cx   float64
		cy   float64
		a    float64
		c    planar.XY
	)
	for _, p := range r.polys {
		a = p.Area()
		c = p.Centroid()
		cx += c.X * a
		cy += c.Y * a
		sumA += a
	}
	if sumA == 0 {
		return planar.XY{}
	}

	return planar.XY{X: cx / sumA, Y: cy / sumA}
}

// Contains reports whether p is feasible (boundary-inclusive).
func (r *Region) Contains(p planar.XY) bool {
	for _, poly := range r.polys {
		if poly.Contains(p, r.eps) {
			return true
		}
	}

	return false
}

// IsEmpty reports whether no feasible area remains (below ε²-scale).
func (r *Region) IsEmpty() bool { return r.Area() < r.minSliver }

// Diameter returns the largest distance between any two boundary vertices
// of the set, in kilometers — the bounding diameter convergence tracks.
//
// Complexity: O(V²) over all vertices.
func (r *Region) Diameter() float64 {
	var (
		all  []planar.XY
		best float64
		d    float64
		i, j int
	)
	for _, p := range r.polys {
		all = append(all, p...)
	}
	for i = 0; i < len(all); i++ {
		for j = i + 1; j < len(all); j++ {
			if d = all[i].Dist(all[j]); d > best {
				best = d
			}
		}
	}

	return best
}

// Bounds returns the bounding box of the whole set.
func (r *Region) Bounds() planar.Box {
	if len(r.polys) == 0 {
		return planar.Box{}
	}

	var (
		b  = r.polys[0].Bounds()
		nb planar.Box
	)
	for _, p := range r.polys[1:] {
		nb = p.Bounds()
		b.Min.X = math.Min(b.Min.X, nb.Min.X)
		b.Min.Y = math.Min(b.Min.Y, nb.Min.Y)
		b.Max.X = math.Max(b.Max.X, nb.Max.X)
		b.Max.Y = math.Max(b.Max.Y, nb.Max.Y)
	}

	return b
}

// Vertices returns defensive copies of every polygon boundary.
func (r *Region) Vertices() []planar.Polygon {
	out := make([]planar.Polygon, len(r.polys))
	for i, p := range r.polys {
		out[i] = p.Clone()
	}

	return out
}

// Largest returns a copy of the largest-area polygon in the set, or nil
// for an empty region. Used for single-boundary export.
func (r *Region) Largest() planar.Polygon {
	var (
		best     planar.Polygon
		bestArea float64
		a        float64
	)
	for _, p := range r.polys {
		if a = p.Area(); a > bestArea {
			bestArea, best = a, p
		}
	}

	return best.Clone()
}

// Count returns the number of polygons in the set.
func (r *Region) Count() int { return len(r.polys) }

// VertexCount returns the total number of boundary vertices.
func (r *Region) VertexCount() int {
	var n int
	for _, p := range r.polys {
		n += len(p)
	}

	return n
}

// Epsilon returns the boundary tolerance in kilometers.
func (r *Region) Epsilon() float64 { return r.eps }
