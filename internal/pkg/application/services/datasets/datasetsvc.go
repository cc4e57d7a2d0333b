package datasets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/McNamara84/ernie-sub002/internal/pkg/application/coverage"
	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	"github.com/McNamara84/ernie-sub002/internal/pkg/infrastructure/repositories/database"
	"github.com/McNamara84/ernie-sub002/internal/pkg/infrastructure/repositories/persistence"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("ernie-coverage/svcs/datasets")

// ErrNoSuchDataset mirrors the datastore sentinel at the service boundary.
var ErrNoSuchDataset = database.ErrNoSuchDataset

// ErrNoSuchEntry is returned when a coverage index from the editor does not
// refer to an existing entry.
var ErrNoSuchEntry = errors.New("no such coverage entry")

//go:generate moq -rm -out datasetsvc_mock.go . DatasetService

// DatasetService owns the curated dataset records and their coverage lists.
// All coverage mutations go through it so the complete-before-add gating and
// the one time legacy normalization happen in exactly one place.
type DatasetService interface {
	GetAll(ctx context.Context) ([]domain.Dataset, error)
	GetByID(ctx context.Context, datasetID string) (*domain.Dataset, error)
	Create(ctx context.Context, dataset domain.Dataset) (*domain.Dataset, error)

	CanAddCoverage(ctx context.Context, datasetID string) (bool, error)
	AddCoverage(ctx context.Context, datasetID string) (*domain.CoverageEntry, error)
	UpdateCoverageField(ctx context.Context, datasetID string, index int, field, value string) (*domain.CoverageEntry, error)
	BatchUpdateCoverage(ctx context.Context, datasetID string, index int, patch coverage.EntryPatch) (*domain.CoverageEntry, error)
	RemoveCoverage(ctx context.Context, datasetID string, index int) error

	Stats(ctx context.Context) (*domain.PortalStats, error)
}

func NewDatasetService(logger zerolog.Logger, db database.Datastore, factory *coverage.Factory, maxEntries int) DatasetService {
	if maxEntries < 1 {
		maxEntries = coverage.DefaultMaxEntries
	}

	return &datasetSvc{
		db:         db,
		factory:    factory,
		maxEntries: maxEntries,
		log:        logger,
	}
}

type datasetSvc struct {
	db         database.Datastore
	factory    *coverage.Factory
	maxEntries int
	log        zerolog.Logger
}

func (svc *datasetSvc) GetAll(ctx context.Context) ([]domain.Dataset, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-datasets")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	stored, err := svc.db.GetDatasets()
	if err != nil {
		log.Error().Err(err).Msg("failed to read datasets")
		return nil, err
	}

	datasets := make([]domain.Dataset, 0, len(stored))
	for _, ds := range stored {
		converted, convErr := svc.toDomain(ds)
		if convErr != nil {
			err = convErr
			return nil, err
		}
		datasets = append(datasets, *converted)
	}

	return datasets, nil
}

func (svc *datasetSvc) GetByID(ctx context.Context, datasetID string) (*domain.Dataset, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-dataset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	stored, err := svc.db.GetDatasetByID(datasetID)
	if err != nil {
		return nil, err
	}

	dataset, err := svc.toDomain(*stored)
	if err != nil {
		return nil, err
	}

	// one time migration: legacy entries are persisted back with their
	// discriminator made explicit
	normalized, changed := coverage.NormalizeLegacy(dataset.Coverage)
	if changed {
		dataset.Coverage = normalized

		if err = svc.saveCoverage(datasetID, normalized); err != nil {
			log.Error().Err(err).Msgf("failed to persist normalized coverage for %s", datasetID)
			return nil, err
		}

		log.Info().Msgf("normalized legacy coverage entries of dataset %s", datasetID)
	}

	return dataset, nil
}

func (svc *datasetSvc) Create(ctx context.Context, dataset domain.Dataset) (*domain.Dataset, error) {
	var err error
	_, span := tracer.Start(ctx, "create-dataset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	stored := persistence.Dataset{
		DatasetID:       dataset.ID,
		Title:           dataset.Title,
		Creators:        strings.Join(dataset.Creators, "; "),
		PublicationYear: dataset.PublicationYear,
		Publisher:       dataset.Publisher,
		Description:     dataset.Description,
	}

	for i, e := range dataset.Coverage {
		entry, convErr := toStored(e, i)
		if convErr != nil {
			err = convErr
			return nil, err
		}
		stored.Coverage = append(stored.Coverage, entry)
	}

	created, err := svc.db.CreateDataset(stored)
	if err != nil {
		return nil, err
	}

	return svc.toDomain(*created)
}

func (svc *datasetSvc) CanAddCoverage(ctx context.Context, datasetID string) (bool, error) {
	list, err := svc.loadList(ctx, datasetID)
	if err != nil {
		return false, err
	}

	return list.CanAdd(), nil
}

func (svc *datasetSvc) AddCoverage(ctx context.Context, datasetID string) (*domain.CoverageEntry, error) {
	var err error
	ctx, span := tracer.Start(ctx, "add-coverage")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	list, err := svc.loadList(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	entry, err := list.Add()
	if err != nil {
		return nil, err
	}

	if err = svc.saveCoverage(datasetID, list.Entries()); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (svc *datasetSvc) UpdateCoverageField(ctx context.Context, datasetID string, index int, field, value string) (*domain.CoverageEntry, error) {
	var err error
	ctx, span := tracer.Start(ctx, "update-coverage-field")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	list, err := svc.loadList(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= list.Len() {
		err = fmt.Errorf("%w: index %d", ErrNoSuchEntry, index)
		return nil, err
	}

	entry, err := list.UpdateField(index, field, value)
	if err != nil {
		return nil, err
	}

	if err = svc.saveCoverage(datasetID, list.Entries()); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (svc *datasetSvc) BatchUpdateCoverage(ctx context.Context, datasetID string, index int, patch coverage.EntryPatch) (*domain.CoverageEntry, error) {
	var err error
	ctx, span := tracer.Start(ctx, "batch-update-coverage")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	list, err := svc.loadList(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= list.Len() {
		err = fmt.Errorf("%w: index %d", ErrNoSuchEntry, index)
		return nil, err
	}

	entry := list.BatchUpdate(index, patch)

	if err = svc.saveCoverage(datasetID, list.Entries()); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (svc *datasetSvc) RemoveCoverage(ctx context.Context, datasetID string, index int) error {
	var err error
	ctx, span := tracer.Start(ctx, "remove-coverage")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	list, err := svc.loadList(ctx, datasetID)
	if err != nil {
		return err
	}

	if index < 0 || index >= list.Len() {
		err = fmt.Errorf("%w: index %d", ErrNoSuchEntry, index)
		return err
	}

	list.Remove(index)

	err = svc.saveCoverage(datasetID, list.Entries())
	return err
}

func (svc *datasetSvc) Stats(ctx context.Context) (*domain.PortalStats, error) {
	var err error
	_, span := tracer.Start(ctx, "portal-stats")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	datasets, err := svc.db.CountDatasets()
	if err != nil {
		return nil, err
	}

	byType, err := svc.db.CountCoverageByType()
	if err != nil {
		return nil, err
	}

	stats := &domain.PortalStats{
		Datasets:       datasets,
		CoverageByType: byType,
	}

	for _, count := range byType {
		stats.CoverageEntries += count
	}

	return stats, nil
}

func (svc *datasetSvc) loadList(ctx context.Context, datasetID string) (*coverage.List, error) {
	dataset, err := svc.GetByID(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	return coverage.NewList(svc.factory, dataset.Coverage, svc.maxEntries), nil
}

func (svc *datasetSvc) saveCoverage(datasetID string, entries []domain.CoverageEntry) error {
	stored := make([]persistence.CoverageEntry, 0, len(entries))

	for i, e := range entries {
		entry, err := toStored(e, i)
		if err != nil {
			return err
		}
		stored = append(stored, entry)
	}

	return svc.db.SetCoverage(datasetID, stored)
}

func (svc *datasetSvc) toDomain(ds persistence.Dataset) (*domain.Dataset, error) {
	dataset := &domain.Dataset{
		ID:              ds.DatasetID,
		Title:           ds.Title,
		PublicationYear: ds.PublicationYear,
		Publisher:       ds.Publisher,
		Description:     ds.Description,
		Coverage:        []domain.CoverageEntry{},
	}

	if ds.Creators != "" {
		dataset.Creators = strings.Split(ds.Creators, "; ")
	}

	for _, e := range ds.Coverage {
		entry := domain.CoverageEntry{
			ID:          e.EntryID,
			Type:        domain.CoverageType(e.Type),
			LatMin:      e.LatMin,
			LonMin:      e.LonMin,
			LatMax:      e.LatMax,
			LonMax:      e.LonMax,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			Timezone:    e.Timezone,
			Description: e.Description,
		}

		if e.PolygonPoints != "" {
			if err := json.Unmarshal([]byte(e.PolygonPoints), &entry.PolygonPoints); err != nil {
				return nil, fmt.Errorf("failed to unmarshal polygon of entry %s: %w", e.EntryID, err)
			}
		}

		dataset.Coverage = append(dataset.Coverage, entry)
	}

	return dataset, nil
}

func toStored(e domain.CoverageEntry, position int) (persistence.CoverageEntry, error) {
	entry := persistence.CoverageEntry{
		EntryID:     e.ID,
		Position:    position,
		Type:        string(e.Type),
		LatMin:      e.LatMin,
		LonMin:      e.LonMin,
		LatMax:      e.LatMax,
		LonMax:      e.LonMax,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Timezone:    e.Timezone,
		Description: e.Description,
	}

	if len(e.PolygonPoints) > 0 {
		encoded, err := json.Marshal(e.PolygonPoints)
		if err != nil {
			return entry, fmt.Errorf("failed to marshal polygon of entry %s: %w", e.ID, err)
		}
		entry.PolygonPoints = string(encoded)
	}

	return entry, nil
}
