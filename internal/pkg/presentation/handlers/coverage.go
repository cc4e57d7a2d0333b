package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/McNamara84/ernie-sub002/internal/pkg/application/coverage"
	"github.com/McNamara84/ernie-sub002/internal/pkg/application/services/datasets"
	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func datasetIDFromRequest(r *http.Request) string {
	datasetID, _ := url.QueryUnescape(chi.URLParam(r, "id"))
	return datasetID
}

func entryIndexFromRequest(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, fmt.Errorf("coverage entry index must be numeric")
	}
	return index, nil
}

func NewRetrieveCoverageHandler(logger zerolog.Logger, svc datasets.DatasetService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-coverage")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		datasetID := datasetIDFromRequest(r)

		dataset, err := svc.GetByID(ctx, datasetID)
		if err != nil {
			respondWithError(w, err)
			return
		}

		canAdd, err := svc.CanAddCoverage(ctx, datasetID)
		if err != nil {
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, struct {
			Entries []any `json:"entries"`
			CanAdd  bool  `json:"canAdd"`
		}{
			Entries: coverageWithHints(dataset.Coverage),
			CanAdd:  canAdd,
		})
	})
}

func NewAddCoverageEntryHandler(logger zerolog.Logger, svc datasets.DatasetService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "add-coverage-entry")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		entry, err := svc.AddCoverage(ctx, datasetIDFromRequest(r))
		if err != nil {
			log.Info().Err(err).Msg("coverage entry not added")
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, entry)
	})
}

func NewUpdateCoverageFieldHandler(logger zerolog.Logger, svc datasets.DatasetService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "update-coverage-field")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		index, err := entryIndexFromRequest(r)
		if err != nil {
			respondWithErrorCode(w, http.StatusBadRequest, err)
			return
		}

		body := struct {
			Value string `json:"value"`
		}{}
		if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.Error().Err(err).Msg("failed to decode field update")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		entry, err := svc.UpdateCoverageField(ctx, datasetIDFromRequest(r), index, chi.URLParam(r, "field"), body.Value)
		if err != nil {
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, struct {
			Entry any             `json:"entry"`
			Hints []coverage.Hint `json:"hints"`
		}{Entry: entry, Hints: coverage.Validate(*entry)})
	})
}

func NewBatchUpdateCoverageHandler(logger zerolog.Logger, svc datasets.DatasetService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "batch-update-coverage")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		index, err := entryIndexFromRequest(r)
		if err != nil {
			respondWithErrorCode(w, http.StatusBadRequest, err)
			return
		}

		patch := coverage.EntryPatch{}
		if err = json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Error().Err(err).Msg("failed to decode coverage patch")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		entry, err := svc.BatchUpdateCoverage(ctx, datasetIDFromRequest(r), index, patch)
		if err != nil {
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, struct {
			Entry any             `json:"entry"`
			Hints []coverage.Hint `json:"hints"`
		}{Entry: entry, Hints: coverage.Validate(*entry)})
	})
}

func NewRemoveCoverageEntryHandler(logger zerolog.Logger, svc datasets.DatasetService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "remove-coverage-entry")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		index, err := entryIndexFromRequest(r)
		if err != nil {
			respondWithErrorCode(w, http.StatusBadRequest, err)
			return
		}

		if err = svc.RemoveCoverage(ctx, datasetIDFromRequest(r), index); err != nil {
			respondWithError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func coverageWithHints(entries []domain.CoverageEntry) []any {
	out := make([]any, 0, len(entries))

	for _, entry := range entries {
		out = append(out, struct {
			domain.CoverageEntry
			Hints []coverage.Hint `json:"hints,omitempty"`
		}{CoverageEntry: entry, Hints: coverage.Validate(entry)})
	}

	return out
}
