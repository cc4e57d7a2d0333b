package coverage

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
)

const (
	maxFractionalDigits = 6

	dateLayout = "2006-01-02"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// FormatCoordinate cleans arbitrary user input into a best effort decimal
// string: everything but digits, a single leading minus and a single decimal
// point is dropped, and the fraction is truncated to six digits. Empty input
// yields empty output. The function is idempotent.
func FormatCoordinate(raw string) string {
	var b strings.Builder

	seenDot := false
	fractionals := 0

	for _, r := range raw {
		switch {
		case r == '-':
			if b.Len() == 0 {
				b.WriteRune(r)
			}
		case r == '.':
			if !seenDot {
				seenDot = true
				b.WriteRune(r)
			}
		case r >= '0' && r <= '9':
			if seenDot {
				if fractionals == maxFractionalDigits {
					continue
				}
				fractionals++
			}
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsValidLatitude reports whether v is empty or a finite number in [-90,90].
// Empty is treated as "not yet filled in", which is checked elsewhere.
func IsValidLatitude(v string) bool {
	return isCoordinateInRange(v, 90)
}

// IsValidLongitude reports whether v is empty or a finite number in [-180,180].
func IsValidLongitude(v string) bool {
	return isCoordinateInRange(v, 180)
}

func isCoordinateInRange(v string, limit float64) bool {
	if v == "" {
		return true
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}

	return f >= -limit && f <= limit
}

// IsValidTime reports whether v is empty or a 24 hour HH:MM or HH:MM:SS string.
func IsValidTime(v string) bool {
	return v == "" || timePattern.MatchString(v)
}

// Hint is an advisory validation message for a single field. Hints never
// block input; they are recomputed from the current values on demand and
// never stored.
type Hint struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate computes the advisory hints for a coverage entry.
func Validate(e domain.CoverageEntry) []Hint {
	hints := []Hint{}

	hints = appendCoordinateHints(hints, e)
	hints = appendTemporalHints(hints, e)

	return hints
}

func appendCoordinateHints(hints []Hint, e domain.CoverageEntry) []Hint {
	coords := []struct {
		field string
		value string
		valid func(string) bool
		label string
	}{
		{"latMin", e.LatMin, IsValidLatitude, "latitude must be between -90 and 90"},
		{"latMax", e.LatMax, IsValidLatitude, "latitude must be between -90 and 90"},
		{"lonMin", e.LonMin, IsValidLongitude, "longitude must be between -180 and 180"},
		{"lonMax", e.LonMax, IsValidLongitude, "longitude must be between -180 and 180"},
	}

	for _, c := range coords {
		if !c.valid(c.value) {
			hints = append(hints, Hint{Field: c.field, Message: c.label})
		}
	}

	if latMin, latMax, ok := parsePair(e.LatMin, e.LatMax); ok && latMin >= latMax {
		hints = append(hints, Hint{Field: "latMax", Message: "max latitude must be greater than min latitude"})
	}

	if lonMin, lonMax, ok := parsePair(e.LonMin, e.LonMax); ok && lonMin >= lonMax {
		hints = append(hints, Hint{Field: "lonMax", Message: "max longitude must be greater than min longitude"})
	}

	for i, p := range e.PolygonPoints {
		if !IsValidLatitude(p.Latitude) || !IsValidLongitude(p.Longitude) {
			hints = append(hints, Hint{
				Field:   fmt.Sprintf("polygonPoints[%d]", i),
				Message: "vertex is outside the valid coordinate range",
			})
		}
	}

	return hints
}

func appendTemporalHints(hints []Hint, e domain.CoverageEntry) []Hint {
	for _, t := range []struct{ field, value string }{
		{"startTime", e.StartTime},
		{"endTime", e.EndTime},
	} {
		if !IsValidTime(t.value) {
			hints = append(hints, Hint{Field: t.field, Message: "time must be HH:MM or HH:MM:SS"})
		}
	}

	start, startErr := parseDate(e.StartDate)
	end, endErr := parseDate(e.EndDate)

	if e.StartDate != "" && startErr != nil {
		hints = append(hints, Hint{Field: "startDate", Message: "date must be YYYY-MM-DD"})
	}
	if e.EndDate != "" && endErr != nil {
		hints = append(hints, Hint{Field: "endDate", Message: "date must be YYYY-MM-DD"})
	}

	if startErr != nil || endErr != nil || e.StartDate == "" || e.EndDate == "" {
		return hints
	}

	if end.Before(start) {
		hints = append(hints, Hint{Field: "endDate", Message: "end date must not be before start date"})
	} else if start.Equal(end) && e.StartTime != "" && e.EndTime != "" &&
		IsValidTime(e.StartTime) && IsValidTime(e.EndTime) && e.StartTime >= e.EndTime {
		hints = append(hints, Hint{Field: "endTime", Message: "end time must be after start time on the same day"})
	}

	return hints
}

func parsePair(min, max string) (float64, float64, bool) {
	if min == "" || max == "" {
		return 0, 0, false
	}

	minf, errMin := strconv.ParseFloat(min, 64)
	maxf, errMax := strconv.ParseFloat(max, 64)
	if errMin != nil || errMax != nil {
		return 0, 0, false
	}

	return minf, maxf, true
}

func parseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	return time.Parse(dateLayout, v)
}
