package persistence

import (
	"gorm.io/gorm"
)

// Dataset is the stored form of a curated metadata record.
type Dataset struct {
	gorm.Model
	DatasetID       string `gorm:"uniqueIndex"`
	Title           string
	Creators        string // "; " separated
	PublicationYear int
	Publisher       string
	Description     string
	Coverage        []CoverageEntry `gorm:"foreignKey:DatasetRef;constraint:OnDelete:CASCADE"`
}

// CoverageEntry is the stored form of one spatial/temporal extent. Entries
// written before the editor grew a type discriminator have an empty Type;
// they are normalized on first load and written back.
type CoverageEntry struct {
	gorm.Model
	DatasetRef    uint `gorm:"index"`
	EntryID       string
	Position      int
	Type          string
	LatMin        string
	LonMin        string
	LatMax        string
	LonMax        string
	PolygonPoints string // JSON encoded vertex list
	StartDate     string
	EndDate       string
	StartTime     string
	EndTime       string
	Timezone      string
	Description   string
}
