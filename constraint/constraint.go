package constraint

import (
	"fmt"

	"github.com/katalvlaran/geofence/geo"
)

// Circle builds a CircleInclude: keep everything within radiusKm of center.
//
// Errors: ErrInvalidConstraint (center out of range, radius ≤ 0).
func Circle(ordinal int, center geo.Point, radiusKm float64) (Constraint, error) {
	c := Constraint{Ordinal: ordinal, Kind: KindCircleInclude, Center: center, RadiusKm: radiusKm}

	return c, c.Validate()
}

// Ray builds a BearingRay: keep the closed wedge of directions
// bearingDeg ± toleranceDeg from origin.
//
// Errors: ErrInvalidConstraint (origin out of range, bearing ∉ [0,360),
// tolerance ∉ [0,180]).
func Ray(ordinal int, origin geo.Point, bearingDeg, toleranceDeg float64) (Constraint, error) {
	c := Constraint{
		Ordinal:      ordinal,
		Kind:         KindBearingRay,
		Center:       origin,
		BearingDeg:   bearingDeg,
		ToleranceDeg: toleranceDeg,
	}

	return c, c.Validate()
}

// SectorExcl builds a SectorExclude: remove the annular wedge swept
// clockwise from startDeg to endDeg between innerKm and outerKm.
// startDeg == endDeg removes the full ring.
//
// Errors: ErrInvalidConstraint.
func SectorExcl(ordinal int, origin geo.Point, innerKm, outerKm, startDeg, endDeg float64) (Constraint, error) {
	c := sector(ordinal, KindSectorExclude, origin, innerKm, outerKm, startDeg, endDeg)

	return c, c.Validate()
}

// SectorIncl builds a SectorInclude: keep (intersect with) the annular
// wedge swept clockwise from startDeg to endDeg between innerKm and
// outerKm. startDeg == endDeg keeps the full ring.
//
// Errors: ErrInvalidConstraint.
func SectorIncl(ordinal int, origin geo.Point, innerKm, outerKm, startDeg, endDeg float64) (Constraint, error) {
	c := sector(ordinal, KindSectorInclude, origin, innerKm, outerKm, startDeg, endDeg)

	return c, c.Validate()
}

// FromRecord converts a raw ingestion record into a validated Constraint.
// A bearing_ray record with a zero (omitted) tolerance receives
// DefaultToleranceDeg.
//
// Errors: ErrUnknownKind, ErrInvalidConstraint.
func FromRecord(r Record) (Constraint, error) {
	kind, err := ParseKind(r.Kind)
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: %q (ordinal %d)", ErrUnknownKind, r.Kind, r.Ordinal)
	}

	origin := geo.Point{Lat: r.Lat, Lon: r.Lon}

	switch kind {
	case KindCircleInclude:
		return Circle(r.Ordinal, origin, r.RadiusKm)
	case KindBearingRay:
		tol := r.ToleranceDeg
		if tol == 0 {
			tol = DefaultToleranceDeg
		}

		return Ray(r.Ordinal, origin, r.BearingDeg, tol)
	case KindSectorExclude:
		return SectorExcl(r.Ordinal, origin, r.InnerKm, r.OuterKm, r.StartDeg, r.EndDeg)
	default: // KindSectorInclude
		return SectorIncl(r.Ordinal, origin, r.InnerKm, r.OuterKm, r.StartDeg, r.EndDeg)
	}
}

// Validate checks every field the constraint's kind uses. It never
// mutates; the engine calls it before touching any state.
//
// Errors: ErrInvalidConstraint wrapped with field detail.
func (c Constraint) Validate() error {
	if err := c.Center.Validate(); err != nil {
		return fmt.Errorf("%w: center: %v", ErrInvalidConstraint, err)
	}

	switch c.Kind {
	case KindCircleInclude:
		if c.RadiusKm <= 0 {
			return fmt.Errorf("%w: radius_km must be > 0, got %v", ErrInvalidConstraint, c.RadiusKm)
		}
	case KindBearingRay:
		if c.BearingDeg < 0 || c.BearingDeg >= 360 {
			return fmt.Errorf("%w: bearing_deg must be in [0,360), got %v", ErrInvalidConstraint, c.BearingDeg)
		}
		if c.ToleranceDeg < 0 || c.ToleranceDeg > 180 {
			return fmt.Errorf("%w: tolerance_deg must be in [0,180], got %v", ErrInvalidConstraint, c.ToleranceDeg)
		}
	case KindSectorExclude, KindSectorInclude:
		if c.InnerKm < 0 {
			return fmt.Errorf("%w: inner_km must be ≥ 0, got %v", ErrInvalidConstraint, c.InnerKm)
		}
		if c.OuterKm <= c.InnerKm {
			return fmt.Errorf("%w: outer_km must exceed inner_km, got %v ≤ %v", ErrInvalidConstraint, c.OuterKm, c.InnerKm)
		}
		if c.StartDeg < 0 || c.StartDeg >= 360 {
			return fmt.Errorf("%w: start_deg must be in [0,360), got %v", ErrInvalidConstraint, c.StartDeg)
		}
		if c.EndDeg < 0 || c.EndDeg >= 360 {
			return fmt.Errorf("%w: end_deg must be in [0,360), got %v", ErrInvalidConstraint, c.EndDeg)
		}
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidConstraint, c.Kind)
	}

	return nil
}

// String renders a short human-readable form used by diagnostics.
func (c Constraint) String() string {
	switch c.Kind {
	case KindCircleInclude:
		return fmt.Sprintf("#%d %s center=%s r=%.1fkm", c.Ordinal, c.Kind, c.Center, c.RadiusKm)
	case KindBearingRay:
		return fmt.Sprintf("#%d %s origin=%s bearing=%.1f°±%.1f°", c.Ordinal, c.Kind, c.Center, c.BearingDeg, c.ToleranceDeg)
	case KindSectorExclude, KindSectorInclude:
		return fmt.Sprintf("#%d %s origin=%s r=[%.1f,%.1f]km sweep=[%.1f°,%.1f°]",
			c.Ordinal, c.Kind, c.Center, c.InnerKm, c.OuterKm, c.StartDeg, c.EndDeg)
	default:
		return fmt.Sprintf("#%d unknown", c.Ordinal)
	}
}

// sector assembles the shared sector fields.
func sector(ordinal int, kind Kind, origin geo.Point, innerKm, outerKm, startDeg, endDeg float64) Constraint {
	return Constraint{
		Ordinal:  ordinal,
		Kind:     kind,
		Center:   origin,
		InnerKm:  innerKm,
		OuterKm:  outerKm,
		StartDeg: startDeg,
		EndDeg:   endDeg,
	}
}
