package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/McNamara84/ernie-sub002/internal/pkg/application/coverage"
	"github.com/McNamara84/ernie-sub002/internal/pkg/application/services/datasets"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("ernie-coverage/api")

func respondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	body, err := json.MarshalIndent(map[string]any{"data": data}, "", "  ")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

// statusFromError maps service errors onto response codes: unknown records
// are 404, gate refusals are 409 and bad field names are 400.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, datasets.ErrNoSuchDataset), errors.Is(err, datasets.ErrNoSuchEntry):
		return http.StatusNotFound
	case errors.Is(err, coverage.ErrEntryIncomplete), errors.Is(err, coverage.ErrTooManyEntries):
		return http.StatusConflict
	case errors.Is(err, coverage.ErrUnknownField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondWithError(w http.ResponseWriter, err error) {
	respondWithErrorCode(w, statusFromError(err), err)
}

func respondWithErrorCode(w http.ResponseWriter, statusCode int, err error) {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}
