package domain

import (
	"fmt"
	"strings"
)

// CoverageType discriminates which spatial fields of a CoverageEntry are
// authoritative.
type CoverageType string

const (
	CoverageTypePoint   CoverageType = "point"
	CoverageTypeBox     CoverageType = "box"
	CoverageTypePolygon CoverageType = "polygon"
)

// PolygonPoint is a single vertex of a polygon coverage.
type PolygonPoint struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// CoverageEntry is one spatial+temporal extent claimed for a dataset.
// Coordinates are kept as decimal strings so that partially typed values
// survive round trips through the editor unchanged.
type CoverageEntry struct {
	ID            string         `json:"id"`
	Type          CoverageType   `json:"type,omitempty"`
	LatMin        string         `json:"latMin"`
	LonMin        string         `json:"lonMin"`
	LatMax        string         `json:"latMax,omitempty"`
	LonMax        string         `json:"lonMax,omitempty"`
	PolygonPoints []PolygonPoint `json:"polygonPoints,omitempty"`
	StartDate     string         `json:"startDate,omitempty"`
	EndDate       string         `json:"endDate,omitempty"`
	StartTime     string         `json:"startTime,omitempty"`
	EndTime       string         `json:"endTime,omitempty"`
	Timezone      string         `json:"timezone,omitempty"`
	Description   string         `json:"description,omitempty"`
}

// CoordinateBounds is the normalized result of a rectangle selection on the
// map. North is always >= South and East >= West.
type CoordinateBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// NewCoordinateBounds normalizes two corner coordinates, supplied in any
// order, into well formed bounds.
func NewCoordinateBounds(latA, lonA, latB, lonB float64) CoordinateBounds {
	b := CoordinateBounds{North: latA, South: latB, East: lonA, West: lonB}
	if b.South > b.North {
		b.North, b.South = b.South, b.North
	}
	if b.West > b.East {
		b.East, b.West = b.West, b.East
	}
	return b
}

// Location is a resolved geocoding result.
type Location struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName,omitempty"`
}

// Dataset is the curated metadata record a coverage list belongs to.
type Dataset struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Creators        []string        `json:"creators,omitempty"`
	PublicationYear int             `json:"publicationYear,omitempty"`
	Publisher       string          `json:"publisher,omitempty"`
	Description     string          `json:"description,omitempty"`
	Coverage        []CoverageEntry `json:"coverage"`
}

// Citation renders the citation string shown on the dataset's landing page,
// in the form "Creator; Creator (Year): Title. Publisher."
func (d Dataset) Citation() string {
	var b strings.Builder

	if len(d.Creators) > 0 {
		b.WriteString(strings.Join(d.Creators, "; "))
		b.WriteString(" ")
	}

	if d.PublicationYear > 0 {
		fmt.Fprintf(&b, "(%d): ", d.PublicationYear)
	}

	b.WriteString(d.Title)
	b.WriteString(".")

	if d.Publisher != "" {
		b.WriteString(" " + d.Publisher + ".")
	}

	return strings.TrimSpace(b.String())
}

// PortalStats feeds the administrative statistics dashboard.
type PortalStats struct {
	Datasets        int64            `json:"datasets"`
	CoverageEntries int64            `json:"coverageEntries"`
	CoverageByType  map[string]int64 `json:"coverageByType"`
}

// Point is a GeoJSON point, coordinates ordered longitude first.
type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func NewPoint(latitude, longitude float64) *Point {
	return &Point{
		"Point",
		[]float64{longitude, latitude},
	}
}
