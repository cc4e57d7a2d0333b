package database

import (
	"errors"
	"fmt"

	"github.com/McNamara84/ernie-sub002/internal/pkg/infrastructure/repositories/persistence"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNoSuchDataset is returned when a dataset id is unknown.
var ErrNoSuchDataset = errors.New("no such dataset")

// Datastore is injected into the dataset service to improve testability.
type Datastore interface {
	CreateDataset(ds persistence.Dataset) (*persistence.Dataset, error)
	GetDatasets() ([]persistence.Dataset, error)
	GetDatasetByID(datasetID string) (*persistence.Dataset, error)
	SetCoverage(datasetID string, entries []persistence.CoverageEntry) error
	CountDatasets() (int64, error)
	CountCoverageByType() (map[string]int64, error)
}

type myDB struct {
	impl *gorm.DB
}

// ConnectorFunc is used to inject a database connection method into
// NewDatabaseConnection.
type ConnectorFunc func() (*gorm.DB, error)

// NewSQLiteConnector opens a connection to a sqlite database at the given
// path. An empty path selects a shared in-memory database.
func NewSQLiteConnector(path string) ConnectorFunc {
	if path == "" {
		path = "file::memory:?cache=shared"
	}

	return func() (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})

		if err == nil {
			db.Exec("PRAGMA foreign_keys = ON")
		}

		return db, err
	}
}

// NewDatabaseConnection initializes a new connection and wraps it in a
// Datastore.
func NewDatabaseConnection(connect ConnectorFunc) (Datastore, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(
		&persistence.Dataset{},
		&persistence.CoverageEntry{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &myDB{impl: impl}, nil
}

func (db *myDB) CreateDataset(ds persistence.Dataset) (*persistence.Dataset, error) {
	result := db.impl.Create(&ds)
	if result.Error != nil {
		return nil, result.Error
	}

	return &ds, nil
}

func (db *myDB) GetDatasets() ([]persistence.Dataset, error) {
	datasets := []persistence.Dataset{}

	result := db.impl.Preload("Coverage", orderByPosition).Order("dataset_id").Find(&datasets)
	if result.Error != nil {
		return nil, result.Error
	}

	return datasets, nil
}

func (db *myDB) GetDatasetByID(datasetID string) (*persistence.Dataset, error) {
	dataset := &persistence.Dataset{}

	result := db.impl.Preload("Coverage", orderByPosition).Where("dataset_id = ?", datasetID).First(dataset)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNoSuchDataset
		}
		return nil, result.Error
	}

	return dataset, nil
}

// SetCoverage replaces the coverage list of a dataset in a single
// transaction, preserving the caller supplied ordering via Position.
func (db *myDB) SetCoverage(datasetID string, entries []persistence.CoverageEntry) error {
	return db.impl.Transaction(func(tx *gorm.DB) error {
		dataset := &persistence.Dataset{}

		result := tx.Where("dataset_id = ?", datasetID).First(dataset)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrNoSuchDataset
			}
			return result.Error
		}

		if err := tx.Where("dataset_ref = ?", dataset.ID).Delete(&persistence.CoverageEntry{}).Error; err != nil {
			return err
		}

		for i := range entries {
			entries[i].ID = 0
			entries[i].DatasetRef = dataset.ID
			entries[i].Position = i
		}

		if len(entries) == 0 {
			return nil
		}

		return tx.Create(&entries).Error
	})
}

func (db *myDB) CountDatasets() (int64, error) {
	var count int64

	result := db.impl.Model(&persistence.Dataset{}).Count(&count)

	return count, result.Error
}

func (db *myDB) CountCoverageByType() (map[string]int64, error) {
	rows := []struct {
		Type  string
		Count int64
	}{}

	result := db.impl.Model(&persistence.CoverageEntry{}).
		Select("type, count(*) as count").
		Group("type").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := map[string]int64{}
	for _, row := range rows {
		counts[row.Type] = row.Count
	}

	return counts, nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
