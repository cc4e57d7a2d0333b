package application

import (
	"compress/flate"
	"context"
	"net/http"

	"github.com/McNamara84/ernie-sub002/internal/pkg/application/services/datasets"
	"github.com/McNamara84/ernie-sub002/internal/pkg/application/services/geocoding"
	"github.com/McNamara84/ernie-sub002/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type coverageAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(r chi.Router, ctx context.Context, svc datasets.DatasetService, geocoder geocoding.Geocoder) API {
	return newCoverageAPI(r, ctx, svc, geocoder)
}

func newCoverageAPI(r chi.Router, ctx context.Context, svc datasets.DatasetService, geocoder geocoding.Geocoder) *coverageAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"application/json", "application/xml",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("ernie-coverage", otelchi.WithChiRoutes(r)))

	a := &coverageAPI{
		router: r,
		log:    log,
	}

	a.addDatasetHandlers(r, log, svc, geocoder)
	a.addProbeHandlers(r)

	return a
}

func (a *coverageAPI) Start(port string) error {
	a.log.Info().Msgf("Starting ernie-coverage on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *coverageAPI) addDatasetHandlers(r chi.Router, log zerolog.Logger, svc datasets.DatasetService, geocoder geocoding.Geocoder) {
	pickers := handlers.NewPickerSessions(log, geocoder)

	r.Get(
		"/api/datasets",
		handlers.NewRetrieveDatasetsHandler(log, svc),
	)
	r.Post(
		"/api/datasets",
		handlers.NewCreateDatasetHandler(log, svc),
	)
	r.Get(
		"/api/datasets/{id}",
		handlers.NewRetrieveDatasetHandler(log, svc),
	)
	r.Get(
		"/api/datasets/{id}/datacite",
		handlers.NewExportDataCiteHandler(log, svc),
	)
	r.Get(
		"/api/datasets/{id}/coverage",
		handlers.NewRetrieveCoverageHandler(log, svc),
	)
	r.Post(
		"/api/datasets/{id}/coverage",
		handlers.NewAddCoverageEntryHandler(log, svc),
	)
	r.Patch(
		"/api/datasets/{id}/coverage/{index}",
		handlers.NewBatchUpdateCoverageHandler(log, svc),
	)
	r.Put(
		"/api/datasets/{id}/coverage/{index}/fields/{field}",
		handlers.NewUpdateCoverageFieldHandler(log, svc),
	)
	r.Delete(
		"/api/datasets/{id}/coverage/{index}",
		handlers.NewRemoveCoverageEntryHandler(log, svc),
	)
	r.Post(
		"/api/datasets/{id}/coverage/{index}/picker",
		handlers.NewPickerEventHandler(log, svc, pickers),
	)
	r.Get(
		"/api/geocode",
		handlers.NewGeocodeHandler(log, geocoder),
	)
	r.Get(
		"/api/stats",
		handlers.NewRetrieveStatsHandler(log, svc),
	)
}

func (a *coverageAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
