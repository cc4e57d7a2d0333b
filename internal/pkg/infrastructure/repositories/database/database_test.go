package database_test

import (
	"errors"
	"fmt"
	"testing"

	db "github.com/McNamara84/ernie-sub002/internal/pkg/infrastructure/repositories/database"
	"github.com/McNamara84/ernie-sub002/internal/pkg/infrastructure/repositories/persistence"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (*is.I, db.Datastore) {
	is := is.New(t)

	store, err := db.NewDatabaseConnection(
		db.NewSQLiteConnector(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())),
	)
	is.NoErr(err)

	return is, store
}

func TestCreateAndFetchDataset(t *testing.T) {
	is, store := testSetup(t)

	_, err := store.CreateDataset(persistence.Dataset{
		DatasetID: "ds-1",
		Title:     "Sediment cores, Lake Constance",
		Coverage: []persistence.CoverageEntry{
			{EntryID: "e2", Position: 1, Type: "point", LatMin: "47.6", LonMin: "9.4"},
			{EntryID: "e1", Position: 0, Type: "box", LatMin: "47.4", LatMax: "47.8", LonMin: "9.0", LonMax: "9.7"},
		},
	})
	is.NoErr(err)

	stored, err := store.GetDatasetByID("ds-1")
	is.NoErr(err)

	is.Equal(stored.Title, "Sediment cores, Lake Constance")
	is.Equal(len(stored.Coverage), 2)
	is.Equal(stored.Coverage[0].EntryID, "e1") // entries come back ordered by position
	is.Equal(stored.Coverage[1].EntryID, "e2")
}

func TestGetDatasetByIDReportsMissingRecords(t *testing.T) {
	is, store := testSetup(t)

	_, err := store.GetDatasetByID("unknown")
	is.True(errors.Is(err, db.ErrNoSuchDataset))
}

func TestSetCoverageReplacesTheList(t *testing.T) {
	is, store := testSetup(t)

	_, err := store.CreateDataset(persistence.Dataset{
		DatasetID: "ds-2",
		Title:     "Replaceable",
		Coverage: []persistence.CoverageEntry{
			{EntryID: "old", Position: 0, Type: "point", LatMin: "1", LonMin: "1"},
		},
	})
	is.NoErr(err)

	err = store.SetCoverage("ds-2", []persistence.CoverageEntry{
		{EntryID: "new-1", Type: "point", LatMin: "2", LonMin: "2"},
		{EntryID: "new-2", Type: "point", LatMin: "3", LonMin: "3"},
	})
	is.NoErr(err)

	stored, err := store.GetDatasetByID("ds-2")
	is.NoErr(err)
	is.Equal(len(stored.Coverage), 2)
	is.Equal(stored.Coverage[0].EntryID, "new-1")
	is.Equal(stored.Coverage[0].Position, 0)
	is.Equal(stored.Coverage[1].Position, 1)

	err = store.SetCoverage("ds-2", nil)
	is.NoErr(err)

	stored, err = store.GetDatasetByID("ds-2")
	is.NoErr(err)
	is.Equal(len(stored.Coverage), 0)

	err = store.SetCoverage("missing", nil)
	is.True(errors.Is(err, db.ErrNoSuchDataset))
}

func TestCounts(t *testing.T) {
	is, store := testSetup(t)

	_, err := store.CreateDataset(persistence.Dataset{
		DatasetID: "ds-3",
		Coverage: []persistence.CoverageEntry{
			{EntryID: "e1", Position: 0, Type: "point"},
			{EntryID: "e2", Position: 1, Type: "box"},
			{EntryID: "e3", Position: 2, Type: "point"},
		},
	})
	is.NoErr(err)

	datasets, err := store.CountDatasets()
	is.NoErr(err)
	is.Equal(datasets, int64(1))

	byType, err := store.CountCoverageByType()
	is.NoErr(err)
	is.Equal(byType["point"], int64(2))
	is.Equal(byType["box"], int64(1))
}
