package coverage

import (
	"errors"
	"fmt"

	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	"golang.org/x/exp/slices"
)

// DefaultMaxEntries caps the number of coverage entries per dataset unless
// configured otherwise.
const DefaultMaxEntries = 99

var (
	// ErrEntryIncomplete is returned by Add when the last entry does not yet
	// satisfy its completeness predicate.
	ErrEntryIncomplete = errors.New("previous coverage entry is incomplete")

	// ErrTooManyEntries is returned by Add when the configured maximum has
	// been reached.
	ErrTooManyEntries = errors.New("coverage entry limit reached")

	// ErrUnknownField is returned by UpdateField for field names that do not
	// exist on a coverage entry.
	ErrUnknownField = errors.New("unknown coverage entry field")
)

// List owns the ordered coverage entries of a single dataset and enforces
// the complete-before-add gating rule.
type List struct {
	entries    []domain.CoverageEntry
	maxEntries int
	factory    *Factory
}

// NewList wraps existing entries, typically loaded from storage after
// NormalizeLegacy has run. maxEntries values below one fall back to
// DefaultMaxEntries.
func NewList(factory *Factory, entries []domain.CoverageEntry, maxEntries int) *List {
	if maxEntries < 1 {
		maxEntries = DefaultMaxEntries
	}

	return &List{
		entries:    slices.Clone(entries),
		maxEntries: maxEntries,
		factory:    factory,
	}
}

// Entries returns a copy of the current entries.
func (l *List) Entries() []domain.CoverageEntry {
	return slices.Clone(l.entries)
}

func (l *List) Len() int {
	return len(l.entries)
}

// CanAdd reports whether Add would succeed: the list is below its maximum
// and the last entry, if any, is complete.
func (l *List) CanAdd() bool {
	if len(l.entries) >= l.maxEntries {
		return false
	}

	if len(l.entries) == 0 {
		return true
	}

	return IsComplete(l.entries[len(l.entries)-1])
}

// Add appends a fresh empty entry. Adding is refused while the last entry is
// incomplete, so the list can not grow by unbounded empty records.
func (l *List) Add() (domain.CoverageEntry, error) {
	if len(l.entries) >= l.maxEntries {
		return domain.CoverageEntry{}, ErrTooManyEntries
	}

	if len(l.entries) > 0 && !IsComplete(l.entries[len(l.entries)-1]) {
		return domain.CoverageEntry{}, ErrEntryIncomplete
	}

	entry := l.factory.NewEntry()
	l.entries = append(l.entries, entry)

	return entry, nil
}

// UpdateField sets a single named field on the entry at index. Coordinate
// values are run through FormatCoordinate on the way in, mirroring the blur
// formatting of the editor. The index must be in bounds; callers translate
// user supplied indices before calling.
func (l *List) UpdateField(index int, field, value string) (domain.CoverageEntry, error) {
	l.mustBeInBounds(index)

	patch := EntryPatch{}

	switch field {
	case "type":
		t := domain.CoverageType(value)
		if t != domain.CoverageTypePoint && t != domain.CoverageTypeBox && t != domain.CoverageTypePolygon {
			return domain.CoverageEntry{}, fmt.Errorf("%w: bad coverage type %q", ErrUnknownField, value)
		}
		patch.Type = &t
	case "latMin":
		value = FormatCoordinate(value)
		patch.LatMin = &value
	case "lonMin":
		value = FormatCoordinate(value)
		patch.LonMin = &value
	case "latMax":
		value = FormatCoordinate(value)
		patch.LatMax = &value
	case "lonMax":
		value = FormatCoordinate(value)
		patch.LonMax = &value
	case "startDate":
		patch.StartDate = &value
	case "endDate":
		patch.EndDate = &value
	case "startTime":
		patch.StartTime = &value
	case "endTime":
		patch.EndTime = &value
	case "timezone":
		patch.Timezone = &value
	case "description":
		patch.Description = &value
	default:
		return domain.CoverageEntry{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return l.BatchUpdate(index, patch), nil
}

// BatchUpdate applies a partial entry to the entry at index in one step.
// Atomic application matters for map selections, where four coordinates
// arrive together and must never be observable one at a time.
func (l *List) BatchUpdate(index int, patch EntryPatch) domain.CoverageEntry {
	l.mustBeInBounds(index)

	l.entries[index] = patch.ApplyTo(l.entries[index])

	return l.entries[index]
}

// Remove deletes the entry at index. Unlike the author list elsewhere in the
// editor, a coverage list may shrink to zero entries.
func (l *List) Remove(index int) {
	l.mustBeInBounds(index)

	l.entries = slices.Delete(l.entries, index, index+1)
}

func (l *List) mustBeInBounds(index int) {
	if index < 0 || index >= len(l.entries) {
		panic(fmt.Sprintf("coverage entry index %d out of bounds (len %d)", index, len(l.entries)))
	}
}
