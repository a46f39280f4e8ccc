package constraint

import (
	"errors"

	"github.com/katalvlaran/geofence/geo"
)

var (
	// ErrInvalidConstraint indicates a clue failed field validation.
	// Recoverable: the engine state is untouched, the caller may correct
	// and resubmit.
	ErrInvalidConstraint = errors.New("constraint: invalid constraint")

	// ErrUnknownKind indicates a Record named a kind outside the
	// vocabulary (see ParseKind).
	ErrUnknownKind = errors.New("constraint: unknown constraint kind")
)

// DefaultToleranceDeg is the bearing wedge half-angle assumed when a raw
// record omits the tolerance. The clue sources this engine was built for
// never state one; 5° matches how their bearings were drawn.
const DefaultToleranceDeg = 5.0

// Kind enumerates the constraint vocabulary.
type Kind uint8

const (
	// KindCircleInclude keeps everything within RadiusKm of Center.
	KindCircleInclude Kind = iota + 1

	// KindBearingRay keeps the wedge of directions Bearing ± Tolerance
	// from Center, range capped by the engine's max-range default.
	KindBearingRay

	// KindSectorExclude removes an annular wedge (eliminated area).
	KindSectorExclude

	// KindSectorInclude keeps an annular wedge (confirmed scan area);
	// intersected with prior state, never unioned.
	KindSectorInclude
)

// kindNames maps Kind to its wire name (Record.Kind).
var kindNames = map[Kind]string{
	KindCircleInclude: "circle_include",
	KindBearingRay:    "bearing_ray",
	KindSectorExclude: "sector_exclude",
	KindSectorInclude: "sector_include",
}

// String returns the wire name of the kind, or "unknown".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "unknown"
}

// Include reports whether the kind intersects with the region (true) or
// subtracts from it (false).
func (k Kind) Include() bool { return k != KindSectorExclude }

// ParseKind resolves a wire name to a Kind.
//
// Errors: ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, ErrUnknownKind
}

// Constraint is one clue, stamped with its ordinal (day number). Fields
// beyond the kind's own are zero and ignored. Immutable value type;
// construct via Circle/Ray/SectorExcl/SectorIncl or FromRecord.
type Constraint struct {
	// Ordinal is the strict sequence index; the engine rejects
	// non-increasing ordinals.
	Ordinal int

	// Kind selects which fields below are meaningful.
	Kind Kind

	// Center is the circle center or wedge/sector origin.
	Center geo.Point

	// RadiusKm — CircleInclude only.
	RadiusKm float64

	// BearingDeg and ToleranceDeg — BearingRay only.
	BearingDeg   float64
	ToleranceDeg float64

	// InnerKm, OuterKm, StartDeg, EndDeg — sector kinds only.
	// StartDeg == EndDeg means a full ring.
	InnerKm  float64
	OuterKm  float64
	StartDeg float64
	EndDeg   float64
}

// Record is the raw clue form consumed from external ingestion
// collaborators. Field names follow the clue-file schema.
type Record struct {
	Ordinal      int     `yaml:"ordinal" json:"ordinal"`
	Kind         string  `yaml:"kind" json:"kind"`
	Lat          float64 `yaml:"lat" json:"lat"`
	Lon          float64 `yaml:"lon" json:"lon"`
	RadiusKm     float64 `yaml:"radius_km,omitempty" json:"radius_km,omitempty"`
	BearingDeg   float64 `yaml:"bearing_deg,omitempty" json:"bearing_deg,omitempty"`
	ToleranceDeg float64 `yaml:"tolerance_deg,omitempty" json:"tolerance_deg,omitempty"`
	InnerKm      float64 `yaml:"inner_km,omitempty" json:"inner_km,omitempty"`
	OuterKm      float64 `yaml:"outer_km,omitempty" json:"outer_km,omitempty"`
	StartDeg     float64 `yaml:"start_deg,omitempty" json:"start_deg,omitempty"`
	EndDeg       float64 `yaml:"end_deg,omitempty" json:"end_deg,omitempty"`
}
