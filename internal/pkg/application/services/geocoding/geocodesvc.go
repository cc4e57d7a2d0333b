package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	"github.com/cenkalti/backoff/v4"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("ernie-coverage/svcs/geocoding")

//go:generate moq -rm -out geocodesvc_mock.go . Geocoder

// Geocoder resolves free text place queries into coordinates.
type Geocoder interface {
	Search(ctx context.Context, query string) (*domain.Location, error)
}

// ErrNotFound is returned when the geocoder has no match for a query.
var ErrNotFound = fmt.Errorf("no matching location")

// NewGeocoder creates a client for a Nominatim style search endpoint.
func NewGeocoder(logger zerolog.Logger, searchURL string) Geocoder {
	return &geocoder{
		searchURL: searchURL,
		log:       logger,
	}
}

type geocoder struct {
	searchURL string
	log       zerolog.Logger
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (g *geocoder) Search(ctx context.Context, query string) (*domain.Location, error) {
	var err error
	ctx, span := tracer.Start(ctx, "geocode-search")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, g.log, ctx)

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	requestURL := g.searchURL + "?" + params.Encode()

	var body []byte

	fetch := func() error {
		httpClient := http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		req.Header.Add("Accept", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("geocoder returned status code %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	err = backoff.Retry(fetch, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx))
	if err != nil {
		log.Error().Err(err).Msg("geocoder request failed")
		return nil, fmt.Errorf("failed to query geocoder: %w", err)
	}

	results := []searchResult{}
	if err = json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geocoder response: %w", err)
	}

	if len(results) == 0 {
		err = ErrNotFound
		return nil, err
	}

	latitude, latErr := strconv.ParseFloat(results[0].Lat, 64)
	longitude, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		err = fmt.Errorf("geocoder returned malformed coordinates (%s, %s)", results[0].Lat, results[0].Lon)
		return nil, err
	}

	return &domain.Location{
		Latitude:    latitude,
		Longitude:   longitude,
		DisplayName: results[0].DisplayName,
	}, nil
}

// Resolver serializes search results so that a slow response can never
// override a newer one. Each Resolve call takes a sequence number; only the
// call holding the newest number may publish its result.
type Resolver struct {
	geocoder Geocoder
	publish  func(domain.Location)
	log      zerolog.Logger

	mu  sync.Mutex
	seq uint64
}

func NewResolver(logger zerolog.Logger, geocoder Geocoder, publish func(domain.Location)) *Resolver {
	return &Resolver{
		geocoder: geocoder,
		publish:  publish,
		log:      logger,
	}
}

// Resolve looks the query up and publishes the result unless a newer query
// has been issued in the meantime. Lookup failures are logged and swallowed;
// the map simply stays where it is.
func (r *Resolver) Resolve(ctx context.Context, query string) {
	r.mu.Lock()
	r.seq++
	mySeq := r.seq
	r.mu.Unlock()

	location, err := r.geocoder.Search(ctx, query)
	if err != nil {
		r.log.Error().Err(err).Msgf("failed to resolve %q", query)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if mySeq != r.seq {
		r.log.Info().Msgf("dropping stale geocoding result for %q", query)
		return
	}

	r.publish(*location)
}
