package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/McNamara84/ernie-sub002/internal/pkg/application/services/geocoding"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

func NewGeocodeHandler(logger zerolog.Logger, geocoder geocoding.Geocoder) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "geocode")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		query := r.URL.Query().Get("q")
		if query == "" {
			err = fmt.Errorf("no search query supplied")
			respondWithErrorCode(w, http.StatusBadRequest, err)
			return
		}

		location, err := geocoder.Search(ctx, query)
		if err != nil {
			if errors.Is(err, geocoding.ErrNotFound) {
				respondWithErrorCode(w, http.StatusNotFound, err)
				return
			}

			log.Error().Err(err).Str("query", query).Msg("geocoder lookup failed")
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, location)
	})
}
