package coverage

import (
	"testing"
	"time"

	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	"github.com/matryer/is"
)

func deterministicFactory() *Factory {
	n := 0

	return &Factory{
		NewID: func() string {
			n++
			return "entry-" + string(rune('0'+n))
		},
		Now:      func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
		Timezone: func() string { return "Europe/Berlin" },
	}
}

func TestFactoryAppliesDefaults(t *testing.T) {
	is := is.New(t)

	f := deterministicFactory()
	entry := f.NewEntry()

	is.Equal(entry.ID, "entry-1")
	is.Equal(entry.Type, domain.CoverageTypePoint)
	is.Equal(entry.Timezone, "Europe/Berlin")
	is.Equal(entry.LatMin, "")
	is.Equal(entry.LonMin, "")
}

func TestCompletenessPredicates(t *testing.T) {
	is := is.New(t)

	is.True(!IsComplete(domain.CoverageEntry{Type: domain.CoverageTypePoint}))
	is.True(IsComplete(domain.CoverageEntry{Type: domain.CoverageTypePoint, LatMin: "48.1", LonMin: "11.5"}))
	is.True(!IsComplete(domain.CoverageEntry{Type: domain.CoverageTypeBox, LatMin: "48.1"}))

	polygon := domain.CoverageEntry{
		Type: domain.CoverageTypePolygon,
		PolygonPoints: []domain.PolygonPoint{
			{Latitude: "1", Longitude: "1"},
			{Latitude: "2", Longitude: "2"},
		},
	}
	is.True(!IsComplete(polygon))

	polygon.PolygonPoints = append(polygon.PolygonPoints, domain.PolygonPoint{Latitude: "3", Longitude: "3"})
	is.True(IsComplete(polygon))
}

func TestNormalizeLegacyInfersTypes(t *testing.T) {
	is := is.New(t)

	entries := []domain.CoverageEntry{
		{LatMax: "10.0", LonMax: "20.0"},
		{PolygonPoints: []domain.PolygonPoint{{Latitude: "1", Longitude: "1"}, {Latitude: "2", Longitude: "2"}, {Latitude: "3", Longitude: "3"}}},
		{LatMin: "5", LonMin: "5"},
	}

	normalized, changed := NormalizeLegacy(entries)

	is.True(changed)
	is.Equal(normalized[0].Type, domain.CoverageTypeBox)
	is.Equal(normalized[1].Type, domain.CoverageTypePolygon)
	is.Equal(normalized[2].Type, domain.CoverageTypePoint)
}

func TestNormalizeLegacyLeavesTypedEntriesAlone(t *testing.T) {
	is := is.New(t)

	entries := []domain.CoverageEntry{
		{Type: domain.CoverageTypePoint, LatMax: "10.0"},
	}

	normalized, changed := NormalizeLegacy(entries)

	is.True(!changed)
	is.Equal(normalized[0].Type, domain.CoverageTypePoint) // existing discriminators win over shape inference
}

func TestPointSelectionPatch(t *testing.T) {
	is := is.New(t)

	entry := domain.CoverageEntry{
		ID:     "e1",
		Type:   domain.CoverageTypeBox,
		LatMin: "1",
		LatMax: "2",
		LonMin: "3",
		LonMax: "4",
	}

	patched := PointSelectionPatch(48.137154, 11.576124).ApplyTo(entry)

	is.Equal(patched.Type, domain.CoverageTypePoint)
	is.Equal(patched.LatMin, "48.137154")
	is.Equal(patched.LonMin, "11.576124")
	is.Equal(patched.LatMax, "")
	is.Equal(patched.LonMax, "")
	is.Equal(patched.ID, "e1") // the id never changes
}

func TestBoundsSelectionPatch(t *testing.T) {
	is := is.New(t)

	bounds := domain.NewCoordinateBounds(62.4, 17.5, 62.3, 17.4)
	patched := BoundsSelectionPatch(bounds).ApplyTo(domain.CoverageEntry{ID: "e2"})

	is.Equal(patched.Type, domain.CoverageTypeBox)
	is.Equal(patched.LatMin, "62.300000")
	is.Equal(patched.LatMax, "62.400000")
	is.Equal(patched.LonMin, "17.400000")
	is.Equal(patched.LonMax, "17.500000")
}
