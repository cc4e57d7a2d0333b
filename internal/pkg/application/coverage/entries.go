package coverage

import (
	"fmt"
	"time"

	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	"github.com/google/uuid"
)

// Factory creates empty coverage entries. The ID generator, clock and
// timezone provider are injected so tests can supply deterministic values.
type Factory struct {
	NewID    func() string
	Now      func() time.Time
	Timezone func() string
}

// NewFactory returns a factory backed by uuid, the system clock and the
// given default IANA timezone.
func NewFactory(defaultTimezone string) *Factory {
	return &Factory{
		NewID:    uuid.NewString,
		Now:      time.Now,
		Timezone: func() string { return defaultTimezone },
	}
}

// NewEntry creates an empty entry with defaults applied: type point and the
// factory's timezone.
func (f *Factory) NewEntry() domain.CoverageEntry {
	return domain.CoverageEntry{
		ID:       f.NewID(),
		Type:     domain.CoverageTypePoint,
		Timezone: f.Timezone(),
	}
}

// IsComplete reports whether an entry satisfies the completeness predicate
// of its type: point and box require latMin and lonMin, a polygon requires
// at least three vertices.
func IsComplete(e domain.CoverageEntry) bool {
	if e.Type == domain.CoverageTypePolygon {
		return len(e.PolygonPoints) >= 3
	}

	return e.LatMin != "" && e.LonMin != ""
}

// NormalizeLegacy infers the type discriminator for entries that were stored
// before it existed. It is a one time migration to be run by the caller when
// a dataset is loaded, never as part of regular list handling. The returned
// flag reports whether anything was changed, so callers can persist the now
// explicit discriminators.
func NormalizeLegacy(entries []domain.CoverageEntry) ([]domain.CoverageEntry, bool) {
	changed := false

	for i, e := range entries {
		if e.Type != "" {
			continue
		}

		entries[i].Type = inferType(e)
		changed = true
	}

	return entries, changed
}

func inferType(e domain.CoverageEntry) domain.CoverageType {
	if len(e.PolygonPoints) > 0 {
		return domain.CoverageTypePolygon
	}

	if e.LatMax != "" || e.LonMax != "" {
		return domain.CoverageTypeBox
	}

	return domain.CoverageTypePoint
}

// EntryPatch is a partial entry for batch updates. Nil fields are left
// untouched; present fields are applied together so multi field selections
// from the map never surface as a sequence of single field states.
type EntryPatch struct {
	Type          *domain.CoverageType   `json:"type,omitempty"`
	LatMin        *string                `json:"latMin,omitempty"`
	LonMin        *string                `json:"lonMin,omitempty"`
	LatMax        *string                `json:"latMax,omitempty"`
	LonMax        *string                `json:"lonMax,omitempty"`
	PolygonPoints *[]domain.PolygonPoint `json:"polygonPoints,omitempty"`
	StartDate     *string                `json:"startDate,omitempty"`
	EndDate       *string                `json:"endDate,omitempty"`
	StartTime     *string                `json:"startTime,omitempty"`
	EndTime       *string                `json:"endTime,omitempty"`
	Timezone      *string                `json:"timezone,omitempty"`
	Description   *string                `json:"description,omitempty"`
}

// ApplyTo returns a copy of e with every present patch field applied.
func (p EntryPatch) ApplyTo(e domain.CoverageEntry) domain.CoverageEntry {
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.LatMin != nil {
		e.LatMin = *p.LatMin
	}
	if p.LonMin != nil {
		e.LonMin = *p.LonMin
	}
	if p.LatMax != nil {
		e.LatMax = *p.LatMax
	}
	if p.LonMax != nil {
		e.LonMax = *p.LonMax
	}
	if p.PolygonPoints != nil {
		e.PolygonPoints = *p.PolygonPoints
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Timezone != nil {
		e.Timezone = *p.Timezone
	}
	if p.Description != nil {
		e.Description = *p.Description
	}

	return e
}

// PointSelectionPatch turns a point picked on the map into an atomic entry
// update: latMin/lonMin are set with six decimal fixed formatting and any
// box maximum is cleared.
func PointSelectionPatch(latitude, longitude float64) EntryPatch {
	return EntryPatch{
		Type:   coverageTypePtr(domain.CoverageTypePoint),
		LatMin: strPtr(formatFixed(latitude)),
		LonMin: strPtr(formatFixed(longitude)),
		LatMax: strPtr(""),
		LonMax: strPtr(""),
	}
}

// BoundsSelectionPatch turns a rectangle selection into an atomic entry
// update setting all four coordinates together.
func BoundsSelectionPatch(b domain.CoordinateBounds) EntryPatch {
	return EntryPatch{
		Type:   coverageTypePtr(domain.CoverageTypeBox),
		LatMin: strPtr(formatFixed(b.South)),
		LatMax: strPtr(formatFixed(b.North)),
		LonMin: strPtr(formatFixed(b.West)),
		LonMax: strPtr(formatFixed(b.East)),
	}
}

func formatFixed(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

func strPtr(s string) *string {
	return &s
}

func coverageTypePtr(t domain.CoverageType) *domain.CoverageType {
	return &t
}
