package coverage

import (
	"testing"

	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestFormatCoordinateCleansInput(t *testing.T) {
	is := is.New(t)

	is.Equal(FormatCoordinate(""), "")
	is.Equal(FormatCoordinate("48.137154"), "48.137154")
	is.Equal(FormatCoordinate("  48,137 deg"), "48137")
	is.Equal(FormatCoordinate("-11.5761249999"), "-11.576124")
	is.Equal(FormatCoordinate("12.34.56"), "12.3456")
	is.Equal(FormatCoordinate("--12"), "-12")
	is.Equal(FormatCoordinate("abc"), "")
	is.Equal(FormatCoordinate("12-34"), "1234") // minus only allowed in the lead
}

func TestFormatCoordinateIsIdempotent(t *testing.T) {
	is := is.New(t)

	inputs := []string{"", "48.137154", "-180.0000001", "1.2.3.4", "minus-5.5", "000.1234567", "-", "."}

	for _, in := range inputs {
		once := FormatCoordinate(in)
		is.Equal(FormatCoordinate(once), once) // formatting twice must equal formatting once
	}
}

func TestLatitudeValidity(t *testing.T) {
	is := is.New(t)

	is.True(IsValidLatitude(""))
	is.True(IsValidLatitude("90"))
	is.True(IsValidLatitude("-90"))
	is.True(IsValidLatitude("48.137154"))
	is.True(!IsValidLatitude("90.000001"))
	is.True(!IsValidLatitude("-91"))
	is.True(!IsValidLatitude("NaN"))
	is.True(!IsValidLatitude("north"))
}

func TestLongitudeValidity(t *testing.T) {
	is := is.New(t)

	is.True(IsValidLongitude(""))
	is.True(IsValidLongitude("180"))
	is.True(IsValidLongitude("-180"))
	is.True(!IsValidLongitude("180.5"))
	is.True(!IsValidLongitude("+Inf"))
}

func TestTimeValidity(t *testing.T) {
	is := is.New(t)

	is.True(IsValidTime(""))
	is.True(IsValidTime("00:00"))
	is.True(IsValidTime("23:59:59"))
	is.True(!IsValidTime("24:00"))
	is.True(!IsValidTime("12:60"))
	is.True(!IsValidTime("12:00:61"))
	is.True(!IsValidTime("9:00"))
	is.True(!IsValidTime("noon"))
}

func TestValidateFlagsInvertedBoxRange(t *testing.T) {
	is := is.New(t)

	entry := domain.CoverageEntry{
		Type:   domain.CoverageTypeBox,
		LatMin: "10.0",
		LatMax: "5.0",
		LonMin: "20.0",
		LonMax: "30.0",
	}

	hints := Validate(entry)
	is.Equal(len(hints), 1)
	is.Equal(hints[0].Field, "latMax")
}

func TestValidateFlagsTemporalOrdering(t *testing.T) {
	is := is.New(t)

	entry := domain.CoverageEntry{
		StartDate: "2024-05-02",
		EndDate:   "2024-05-01",
	}

	hints := Validate(entry)
	is.Equal(len(hints), 1)
	is.Equal(hints[0].Field, "endDate")

	entry.EndDate = "2024-05-02"
	entry.StartTime = "14:00"
	entry.EndTime = "13:00"

	hints = Validate(entry)
	is.Equal(len(hints), 1)
	is.Equal(hints[0].Field, "endTime") // same day requires start < end

	entry.EndTime = "14:30"
	is.Equal(len(Validate(entry)), 0)
}

func TestValidateAcceptsIncompleteEntry(t *testing.T) {
	is := is.New(t)

	// soft validation: an empty entry is fine, hints only appear for
	// values that are actually malformed
	is.Equal(len(Validate(domain.CoverageEntry{})), 0)
}

func TestValidateFlagsPolygonVertices(t *testing.T) {
	is := is.New(t)

	entry := domain.CoverageEntry{
		Type: domain.CoverageTypePolygon,
		PolygonPoints: []domain.PolygonPoint{
			{Latitude: "48.1", Longitude: "11.5"},
			{Latitude: "95.0", Longitude: "11.6"},
			{Latitude: "48.2", Longitude: "11.7"},
		},
	}

	hints := Validate(entry)
	is.Equal(len(hints), 1)
	is.Equal(hints[0].Field, "polygonPoints[1]")
}
