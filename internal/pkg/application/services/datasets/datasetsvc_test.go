package datasets

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/McNamara84/ernie-sub002/internal/pkg/application/coverage"
	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	"github.com/McNamara84/ernie-sub002/internal/pkg/infrastructure/repositories/database"
	"github.com/McNamara84/ernie-sub002/internal/pkg/infrastructure/repositories/persistence"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func testSetup(t *testing.T) (*is.I, DatasetService, database.Datastore) {
	is := is.New(t)

	db, err := database.NewDatabaseConnection(
		database.NewSQLiteConnector(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())),
	)
	is.NoErr(err)

	n := 0
	factory := &coverage.Factory{
		NewID:    func() string { n++; return fmt.Sprintf("entry-%d", n) },
		Now:      time.Now,
		Timezone: func() string { return "Europe/Berlin" },
	}

	return is, NewDatasetService(zerolog.Logger{}, db, factory, 0), db
}

func createDataset(is *is.I, svc DatasetService, id string, entries ...domain.CoverageEntry) {
	_, err := svc.Create(context.Background(), domain.Dataset{
		ID:              id,
		Title:           "Groundwater monitoring in the Inn valley",
		Creators:        []string{"Musterfrau, Erika", "Mustermann, Max"},
		PublicationYear: 2023,
		Publisher:       "GFZ Data Services",
		Coverage:        entries,
	})
	is.NoErr(err)
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	is, svc, _ := testSetup(t)
	ctx := context.Background()

	createDataset(is, svc, "ds-1", domain.CoverageEntry{
		ID:   "e1",
		Type: domain.CoverageTypePolygon,
		PolygonPoints: []domain.PolygonPoint{
			{Latitude: "48.1", Longitude: "11.5"},
			{Latitude: "48.2", Longitude: "11.6"},
			{Latitude: "48.3", Longitude: "11.4"},
		},
		Timezone: "Europe/Berlin",
	})

	dataset, err := svc.GetByID(ctx, "ds-1")
	is.NoErr(err)

	is.Equal(dataset.Title, "Groundwater monitoring in the Inn valley")
	is.Equal(len(dataset.Creators), 2)
	is.Equal(len(dataset.Coverage), 1)
	is.Equal(dataset.Coverage[0].Type, domain.CoverageTypePolygon)
	is.Equal(len(dataset.Coverage[0].PolygonPoints), 3)
	is.Equal(dataset.Citation(), "Musterfrau, Erika; Mustermann, Max (2023): Groundwater monitoring in the Inn valley. GFZ Data Services.")
}

func TestGetByIDOfUnknownDataset(t *testing.T) {
	is, svc, _ := testSetup(t)

	_, err := svc.GetByID(context.Background(), "nope")
	is.True(errors.Is(err, ErrNoSuchDataset))
}

func TestLegacyEntriesAreNormalizedOnceAndPersisted(t *testing.T) {
	is, svc, db := testSetup(t)
	ctx := context.Background()

	createDataset(is, svc, "ds-legacy",
		domain.CoverageEntry{ID: "e1", LatMin: "5", LonMin: "5", LatMax: "10.0", LonMax: "20.0"},
		domain.CoverageEntry{ID: "e2", LatMin: "5", LonMin: "5"},
	)

	dataset, err := svc.GetByID(ctx, "ds-legacy")
	is.NoErr(err)
	is.Equal(dataset.Coverage[0].Type, domain.CoverageTypeBox)
	is.Equal(dataset.Coverage[1].Type, domain.CoverageTypePoint)

	// the discriminator must have been made explicit in storage
	stored, err := db.GetDatasetByID("ds-legacy")
	is.NoErr(err)
	is.Equal(stored.Coverage[0].Type, "box")
	is.Equal(stored.Coverage[1].Type, "point")
}

func TestAddCoverageIsGated(t *testing.T) {
	is, svc, _ := testSetup(t)
	ctx := context.Background()

	createDataset(is, svc, "ds-gated")

	canAdd, err := svc.CanAddCoverage(ctx, "ds-gated")
	is.NoErr(err)
	is.True(canAdd)

	entry, err := svc.AddCoverage(ctx, "ds-gated")
	is.NoErr(err)
	is.Equal(entry.Type, domain.CoverageTypePoint)
	is.Equal(entry.Timezone, "Europe/Berlin")

	_, err = svc.AddCoverage(ctx, "ds-gated")
	is.True(errors.Is(err, coverage.ErrEntryIncomplete))

	_, err = svc.UpdateCoverageField(ctx, "ds-gated", 0, "latMin", "48.1")
	is.NoErr(err)
	_, err = svc.UpdateCoverageField(ctx, "ds-gated", 0, "lonMin", "11.5")
	is.NoErr(err)

	canAdd, err = svc.CanAddCoverage(ctx, "ds-gated")
	is.NoErr(err)
	is.True(canAdd)

	_, err = svc.AddCoverage(ctx, "ds-gated")
	is.NoErr(err)

	dataset, err := svc.GetByID(ctx, "ds-gated")
	is.NoErr(err)
	is.Equal(len(dataset.Coverage), 2)
}

func TestUpdateCoverageFieldValidatesInput(t *testing.T) {
	is, svc, _ := testSetup(t)
	ctx := context.Background()

	createDataset(is, svc, "ds-update", domain.CoverageEntry{ID: "e1", Type: domain.CoverageTypePoint})

	_, err := svc.UpdateCoverageField(ctx, "ds-update", 3, "latMin", "1")
	is.True(errors.Is(err, ErrNoSuchEntry))

	_, err = svc.UpdateCoverageField(ctx, "ds-update", 0, "altitude", "100")
	is.True(errors.Is(err, coverage.ErrUnknownField))
}

func TestBatchUpdateAppliesMapSelection(t *testing.T) {
	is, svc, _ := testSetup(t)
	ctx := context.Background()

	createDataset(is, svc, "ds-batch", domain.CoverageEntry{ID: "e1", Type: domain.CoverageTypePoint})

	bounds := domain.NewCoordinateBounds(62.3, 17.5, 62.4, 17.4)
	entry, err := svc.BatchUpdateCoverage(ctx, "ds-batch", 0, coverage.BoundsSelectionPatch(bounds))
	is.NoErr(err)

	is.Equal(entry.Type, domain.CoverageTypeBox)
	is.Equal(entry.LatMin, "62.300000")
	is.Equal(entry.LatMax, "62.400000")

	dataset, err := svc.GetByID(ctx, "ds-batch")
	is.NoErr(err)
	is.Equal(dataset.Coverage[0].LonMin, "17.400000")
	is.Equal(dataset.Coverage[0].LonMax, "17.500000")
}

func TestRemoveCoverageMayEmptyTheList(t *testing.T) {
	is, svc, _ := testSetup(t)
	ctx := context.Background()

	createDataset(is, svc, "ds-remove",
		domain.CoverageEntry{ID: "e1", Type: domain.CoverageTypePoint, LatMin: "1", LonMin: "1"},
		domain.CoverageEntry{ID: "e2", Type: domain.CoverageTypePoint, LatMin: "2", LonMin: "2"},
	)

	is.NoErr(svc.RemoveCoverage(ctx, "ds-remove", 0))

	dataset, err := svc.GetByID(ctx, "ds-remove")
	is.NoErr(err)
	is.Equal(len(dataset.Coverage), 1)
	is.Equal(dataset.Coverage[0].ID, "e2")

	is.NoErr(svc.RemoveCoverage(ctx, "ds-remove", 0))

	dataset, err = svc.GetByID(ctx, "ds-remove")
	is.NoErr(err)
	is.Equal(len(dataset.Coverage), 0)

	err = svc.RemoveCoverage(ctx, "ds-remove", 0)
	is.True(errors.Is(err, ErrNoSuchEntry))
}

func TestGetAllSurfacesCorruptStoredEntries(t *testing.T) {
	is, svc, db := testSetup(t)
	ctx := context.Background()

	createDataset(is, svc, "ds-corrupt")

	err := db.SetCoverage("ds-corrupt", []persistence.CoverageEntry{
		{EntryID: "e1", Type: "polygon", PolygonPoints: "{"},
	})
	is.NoErr(err)

	_, err = svc.GetAll(ctx)
	is.True(err != nil) // an undecodable vertex list must not be silently dropped
}

func TestStatsCountsCoverageByType(t *testing.T) {
	is, svc, _ := testSetup(t)
	ctx := context.Background()

	createDataset(is, svc, "ds-stats-1",
		domain.CoverageEntry{ID: "e1", Type: domain.CoverageTypePoint, LatMin: "1", LonMin: "1"},
		domain.CoverageEntry{ID: "e2", Type: domain.CoverageTypeBox, LatMin: "1", LonMin: "1", LatMax: "2", LonMax: "2"},
	)
	createDataset(is, svc, "ds-stats-2",
		domain.CoverageEntry{ID: "e3", Type: domain.CoverageTypePoint, LatMin: "3", LonMin: "3"},
	)

	stats, err := svc.Stats(ctx)
	is.NoErr(err)

	is.Equal(stats.Datasets, int64(2))
	is.Equal(stats.CoverageEntries, int64(3))
	is.Equal(stats.CoverageByType["point"], int64(2))
	is.Equal(stats.CoverageByType["box"], int64(1))
}
