package handlers

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"

	"github.com/McNamara84/ernie-sub002/internal/pkg/application/coverage"
	"github.com/McNamara84/ernie-sub002/internal/pkg/application/export"
	"github.com/McNamara84/ernie-sub002/internal/pkg/application/services/datasets"
	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func NewRetrieveDatasetsHandler(logger zerolog.Logger, svc datasets.DatasetService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-datasets")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		allDatasets, err := svc.GetAll(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to retrieve datasets")
			respondWithError(w, err)
			return
		}

		type summary struct {
			ID       string `json:"id"`
			Title    string `json:"title"`
			Citation string `json:"citation"`
		}

		summaries := make([]summary, 0, len(allDatasets))
		for _, ds := range allDatasets {
			summaries = append(summaries, summary{ID: ds.ID, Title: ds.Title, Citation: ds.Citation()})
		}

		respondWithJSON(w, http.StatusOK, summaries)
	})
}

// landingPage is the public view of a dataset: its metadata, the rendered
// citation and the coverage entries with their advisory validation hints.
type landingPage struct {
	domain.Dataset
	Citation string                     `json:"citation"`
	Hints    map[string][]coverage.Hint `json:"hints,omitempty"`
	CanAdd   bool                       `json:"canAddCoverage"`
}

func NewRetrieveDatasetHandler(logger zerolog.Logger, svc datasets.DatasetService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-dataset")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		datasetID, _ := url.QueryUnescape(chi.URLParam(r, "id"))
		if datasetID == "" {
			err = fmt.Errorf("no dataset id supplied in query")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

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

		page := landingPage{
			Dataset:  *dataset,
			Citation: dataset.Citation(),
			CanAdd:   canAdd,
		}

		for _, entry := range dataset.Coverage {
			if hints := coverage.Validate(entry); len(hints) > 0 {
				if page.Hints == nil {
					page.Hints = map[string][]coverage.Hint{}
				}
				page.Hints[entry.ID] = hints
			}
		}

		respondWithJSON(w, http.StatusOK, page)
	})
}

func NewCreateDatasetHandler(logger zerolog.Logger, svc datasets.DatasetService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "create-dataset")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		dataset := domain.Dataset{}
		if err = json.NewDecoder(r.Body).Decode(&dataset); err != nil {
			log.Error().Err(err).Msg("failed to decode dataset")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if dataset.ID == "" || dataset.Title == "" {
			err = fmt.Errorf("dataset id and title are required")
			respondWithErrorCode(w, http.StatusBadRequest, err)
			return
		}

		created, err := svc.Create(ctx, dataset)
		if err != nil {
			log.Error().Err(err).Msg("failed to create dataset")
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, created)
	})
}

func NewExportDataCiteHandler(logger zerolog.Logger, svc datasets.DatasetService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "export-datacite")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		datasetID, _ := url.QueryUnescape(chi.URLParam(r, "id"))

		dataset, err := svc.GetByID(ctx, datasetID)
		if err != nil {
			respondWithError(w, err)
			return
		}

		resource := export.NewResource(*dataset)

		body, err := xml.MarshalIndent(resource, "", "  ")
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal datacite resource")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/xml")
		w.Write([]byte(xml.Header))
		w.Write(body)
	})
}

func NewRetrieveStatsHandler(logger zerolog.Logger, svc datasets.DatasetService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-stats")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		stats, err := svc.Stats(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to compute portal statistics")
			respondWithError(w, err)
			return
		}

		w.Header().Add("Cache-Control", "max-age=60")
		respondWithJSON(w, http.StatusOK, stats)
	})
}
