package export

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestResourceCarriesCoverageAsGeoLocations(t *testing.T) {
	is := is.New(t)

	ds := domain.Dataset{
		ID:              "10.5880/GFZ.4.8.2023.004",
		Title:           "Seismic catalogue of the Alpine foreland",
		Creators:        []string{"Musterfrau, Erika"},
		PublicationYear: 2023,
		Publisher:       "GFZ Data Services",
		Coverage: []domain.CoverageEntry{
			{
				ID: "e1", Type: domain.CoverageTypePoint,
				LatMin: "48.137154", LonMin: "11.576124",
				StartDate: "2020-01-01", EndDate: "2021-12-31",
				Description: "Munich reference station",
			},
			{
				ID: "e2", Type: domain.CoverageTypeBox,
				LatMin: "47.2", LatMax: "48.9", LonMin: "10.1", LonMax: "12.8",
			},
			{
				ID: "e3", Type: domain.CoverageTypePolygon,
				PolygonPoints: []domain.PolygonPoint{
					{Latitude: "47.0", Longitude: "10.0"},
					{Latitude: "47.5", Longitude: "10.5"},
					{Latitude: "47.0", Longitude: "11.0"},
				},
			},
		},
	}

	r := NewResource(ds)

	is.Equal(len(r.GeoLocations), 3)
	is.Equal(r.GeoLocations[0].Point.Latitude, "48.137154")
	is.Equal(r.GeoLocations[0].Place, "Munich reference station")
	is.Equal(r.GeoLocations[1].Box.NorthLatitude, "48.9")
	is.Equal(len(r.GeoLocations[2].Polygon.Points), 3)

	is.Equal(len(r.Dates), 1)
	is.Equal(r.Dates[0].Value, "2020-01-01/2021-12-31")

	encoded, err := xml.MarshalIndent(r, "", "  ")
	is.NoErr(err)

	out := string(encoded)
	is.True(strings.Contains(out, `<resource xmlns="http://datacite.org/schema/kernel-4">`))
	is.True(strings.Contains(out, "<identifier identifierType=\"Handle\">10.5880/GFZ.4.8.2023.004</identifier>"))
	is.True(strings.Contains(out, "<northBoundLatitude>48.9</northBoundLatitude>"))
	is.True(strings.Contains(out, "<pointLongitude>11.576124</pointLongitude>"))
	is.True(strings.Contains(out, "<date dateType=\"Collected\">2020-01-01/2021-12-31</date>"))
}

func TestResourceWithoutCoverageHasNoGeoLocations(t *testing.T) {
	is := is.New(t)

	r := NewResource(domain.Dataset{ID: "ds-1", Title: "Bare record"})

	is.Equal(len(r.GeoLocations), 0)
	is.Equal(len(r.Dates), 0)
	is.Equal(r.PublicationYear, "")

	encoded, err := xml.Marshal(r)
	is.NoErr(err)
	is.True(!strings.Contains(string(encoded), "geoLocation"))
}
