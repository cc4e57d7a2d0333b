package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/McNamara84/ernie-sub002/internal/pkg/application/coverage"
	"github.com/McNamara84/ernie-sub002/internal/pkg/application/mappicker"
	"github.com/McNamara84/ernie-sub002/internal/pkg/application/services/datasets"
	"github.com/McNamara84/ernie-sub002/internal/pkg/application/services/geocoding"
	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

// pickerSession holds the interaction state of one open map picker. Every
// committed selection is queued as a patch and applied to the coverage
// entry when the event that produced it has been handled. Searches go
// through a resolver, so a slow geocoder response can never move the
// marker after a newer search has landed. The mutex serializes event
// handling per session; the picker and the pending queue must never be
// touched without it.
type pickerSession struct {
	mu       sync.Mutex
	picker   *mappicker.Picker
	resolver *geocoding.Resolver
	pending  []coverage.EntryPatch
}

// PickerSessions keeps one picker per coverage entry, so that consecutive
// events from the same client act on the same interaction state.
type PickerSessions struct {
	mu       sync.Mutex
	sessions map[string]*pickerSession
	geocoder geocoding.Geocoder
	log      zerolog.Logger
}

func NewPickerSessions(logger zerolog.Logger, geocoder geocoding.Geocoder) *PickerSessions {
	return &PickerSessions{
		sessions: map[string]*pickerSession{},
		geocoder: geocoder,
		log:      logger,
	}
}

func (ps *PickerSessions) session(datasetID string, index int) *pickerSession {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	key := fmt.Sprintf("%s/%d", datasetID, index)

	s, ok := ps.sessions[key]
	if !ok {
		s = &pickerSession{}
		s.picker = mappicker.New(mappicker.Callbacks{
			PointSelected: func(lat, lon float64) {
				s.pending = append(s.pending, coverage.PointSelectionPatch(lat, lon))
			},
			BoundsSelected: func(b domain.CoordinateBounds) {
				s.pending = append(s.pending, coverage.BoundsSelectionPatch(b))
			},
		})
		s.resolver = geocoding.NewResolver(ps.log, ps.geocoder, func(location domain.Location) {
			s.picker.SearchResult(location.Latitude, location.Longitude)
		})
		ps.sessions[key] = s
	}

	return s
}

type pickerEventRequest struct {
	mappicker.Event
	Query string `json:"query,omitempty"`
}

type pickerStateResponse struct {
	Mode       mappicker.DrawingMode  `json:"mode"`
	PanEnabled bool                   `json:"panEnabled"`
	Overlays   mappicker.OverlayState `json:"overlays"`
	Entry      any                    `json:"entry,omitempty"`
}

func NewPickerEventHandler(logger zerolog.Logger, svc datasets.DatasetService, sessions *PickerSessions) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "picker-event")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		index, err := entryIndexFromRequest(r)
		if err != nil {
			respondWithErrorCode(w, http.StatusBadRequest, err)
			return
		}

		req := pickerEventRequest{}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error().Err(err).Msg("failed to decode picker event")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		datasetID := datasetIDFromRequest(r)
		session := sessions.session(datasetID, index)

		session.mu.Lock()
		defer session.mu.Unlock()

		if req.Type == mappicker.EventSearch {
			session.resolver.Resolve(ctx, req.Query)
		} else if err = session.picker.Handle(req.Event); err != nil {
			respondWithErrorCode(w, http.StatusBadRequest, err)
			return
		}

		var entry any
		for _, patch := range session.pending {
			updated, patchErr := svc.BatchUpdateCoverage(ctx, datasetID, index, patch)
			if patchErr != nil {
				err = patchErr
				respondWithError(w, err)
				return
			}
			entry = updated
		}
		session.pending = nil

		respondWithJSON(w, http.StatusOK, pickerStateResponse{
			Mode:       session.picker.Mode(),
			PanEnabled: session.picker.PanEnabled(),
			Overlays:   session.picker.Overlays(),
			Entry:      entry,
		})
	})
}
