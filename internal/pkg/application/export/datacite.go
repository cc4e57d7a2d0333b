package export

import (
	"encoding/xml"
	"strconv"

	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
)

const (
	dataciteNamespace = "http://datacite.org/schema/kernel-4"
	dateTypeCollected = "Collected"
)

// Resource is the DataCite style representation of a dataset, carrying the
// coverage entries as geoLocations.
type Resource struct {
	XMLName         xml.Name      `xml:"resource"`
	Xmlns           string        `xml:"xmlns,attr"`
	Identifier      Identifier    `xml:"identifier"`
	Creators        []Creator     `xml:"creators>creator"`
	Titles          []Title       `xml:"titles>title"`
	Publisher       string        `xml:"publisher,omitempty"`
	PublicationYear string        `xml:"publicationYear,omitempty"`
	Dates           []Date        `xml:"dates>date,omitempty"`
	GeoLocations    []GeoLocation `xml:"geoLocations>geoLocation,omitempty"`
	Descriptions    []Description `xml:"descriptions>description,omitempty"`
}

type Identifier struct {
	Type  string `xml:"identifierType,attr"`
	Value string `xml:",chardata"`
}

type Creator struct {
	Name string `xml:"creatorName"`
}

type Title struct {
	Value string `xml:",chardata"`
}

type Date struct {
	Type  string `xml:"dateType,attr"`
	Value string `xml:",chardata"`
}

type Description struct {
	Type  string `xml:"descriptionType,attr"`
	Value string `xml:",chardata"`
}

type GeoLocation struct {
	Place   string      `xml:"geoLocationPlace,omitempty"`
	Point   *GeoPoint   `xml:"geoLocationPoint,omitempty"`
	Box     *GeoBox     `xml:"geoLocationBox,omitempty"`
	Polygon *GeoPolygon `xml:"geoLocationPolygon,omitempty"`
}

type GeoPoint struct {
	Latitude  string `xml:"pointLatitude"`
	Longitude string `xml:"pointLongitude"`
}

type GeoBox struct {
	WestLongitude string `xml:"westBoundLongitude"`
	EastLongitude string `xml:"eastBoundLongitude"`
	SouthLatitude string `xml:"southBoundLatitude"`
	NorthLatitude string `xml:"northBoundLatitude"`
}

type GeoPolygon struct {
	Points []GeoPoint `xml:"polygonPoint"`
}

// NewResource maps a dataset onto the DataCite layout.
func NewResource(ds domain.Dataset) Resource {
	r := Resource{
		Xmlns:      dataciteNamespace,
		Identifier: Identifier{Type: "Handle", Value: ds.ID},
		Titles:     []Title{{Value: ds.Title}},
		Publisher:  ds.Publisher,
	}

	if ds.PublicationYear > 0 {
		r.PublicationYear = strconv.Itoa(ds.PublicationYear)
	}

	for _, c := range ds.Creators {
		r.Creators = append(r.Creators, Creator{Name: c})
	}

	if ds.Description != "" {
		r.Descriptions = append(r.Descriptions, Description{Type: "Abstract", Value: ds.Description})
	}

	for _, e := range ds.Coverage {
		r.GeoLocations = append(r.GeoLocations, newGeoLocation(e))

		if d := collectedDate(e); d != nil {
			r.Dates = append(r.Dates, *d)
		}
	}

	return r
}

func newGeoLocation(e domain.CoverageEntry) GeoLocation {
	loc := GeoLocation{Place: e.Description}

	switch e.Type {
	case domain.CoverageTypeBox:
		loc.Box = &GeoBox{
			WestLongitude: e.LonMin,
			EastLongitude: e.LonMax,
			SouthLatitude: e.LatMin,
			NorthLatitude: e.LatMax,
		}
	case domain.CoverageTypePolygon:
		polygon := &GeoPolygon{}
		for _, p := range e.PolygonPoints {
			polygon.Points = append(polygon.Points, GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude})
		}
		loc.Polygon = polygon
	default:
		loc.Point = &GeoPoint{Latitude: e.LatMin, Longitude: e.LonMin}
	}

	return loc
}

func collectedDate(e domain.CoverageEntry) *Date {
	if e.StartDate == "" && e.EndDate == "" {
		return nil
	}

	// DataCite range notation: start/end, either side may be open
	return &Date{Type: dateTypeCollected, Value: e.StartDate + "/" + e.EndDate}
}
