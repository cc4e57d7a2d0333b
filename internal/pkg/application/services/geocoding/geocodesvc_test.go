package geocoding

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/McNamara84/ernie-sub002/internal/pkg/domain"
	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput

const nominatimJSON string = `[
	{
		"place_id": 107538,
		"lat": "48.1371079",
		"lon": "11.5753822",
		"display_name": "München, Bayern, Deutschland"
	}
]`

func testSetup(t *testing.T, statusCode int, responseBody string) (*is.I, testutils.MockService) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(statusCode),
			response.ContentType("application/json"),
			response.Body([]byte(responseBody)),
		),
	)

	return is, ms
}

func TestSearchResolvesALocation(t *testing.T) {
	is, ms := testSetup(t, 200, nominatimJSON)

	g := NewGeocoder(zerolog.Logger{}, ms.URL())
	location, err := g.Search(context.Background(), "München")

	is.NoErr(err)
	is.Equal(location.Latitude, 48.1371079)
	is.Equal(location.Longitude, 11.5753822)
	is.Equal(location.DisplayName, "München, Bayern, Deutschland")
}

func TestSearchReturnsNotFoundForEmptyResult(t *testing.T) {
	is, ms := testSetup(t, 200, "[]")

	g := NewGeocoder(zerolog.Logger{}, ms.URL())
	_, err := g.Search(context.Background(), "nowhere at all")

	is.True(errors.Is(err, ErrNotFound))
}

func TestSearchRejectsMalformedCoordinates(t *testing.T) {
	is, ms := testSetup(t, 200, `[{"lat": "north", "lon": "west"}]`)

	g := NewGeocoder(zerolog.Logger{}, ms.URL())
	_, err := g.Search(context.Background(), "somewhere")

	is.True(err != nil)
}

func TestResolverPublishesResult(t *testing.T) {
	is := is.New(t)

	geocoder := &GeocoderMock{
		SearchFunc: func(ctx context.Context, query string) (*domain.Location, error) {
			return &domain.Location{Latitude: 48.1, Longitude: 11.5, DisplayName: query}, nil
		},
	}

	published := []domain.Location{}
	r := NewResolver(zerolog.Logger{}, geocoder, func(l domain.Location) {
		published = append(published, l)
	})

	r.Resolve(context.Background(), "München")

	is.Equal(len(published), 1)
	is.Equal(published[0].Latitude, 48.1)
}

func TestResolverSwallowsFailures(t *testing.T) {
	is := is.New(t)

	geocoder := &GeocoderMock{
		SearchFunc: func(ctx context.Context, query string) (*domain.Location, error) {
			return nil, ErrNotFound
		},
	}

	published := 0
	r := NewResolver(zerolog.Logger{}, geocoder, func(l domain.Location) { published++ })

	r.Resolve(context.Background(), "nowhere")

	is.Equal(published, 0) // failures do not move the map
}

func TestResolverDropsStaleResults(t *testing.T) {
	is := is.New(t)

	firstStarted := make(chan struct{})
	release := make(chan struct{})

	geocoder := &GeocoderMock{
		SearchFunc: func(ctx context.Context, query string) (*domain.Location, error) {
			if query == "slow" {
				close(firstStarted)
				<-release
				return &domain.Location{Latitude: 1, DisplayName: query}, nil
			}
			return &domain.Location{Latitude: 2, DisplayName: query}, nil
		},
	}

	var mu sync.Mutex
	published := []domain.Location{}
	r := NewResolver(zerolog.Logger{}, geocoder, func(l domain.Location) {
		mu.Lock()
		defer mu.Unlock()
		published = append(published, l)
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.Resolve(context.Background(), "slow")
	}()

	<-firstStarted
	r.Resolve(context.Background(), "fast")
	close(release)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()

	is.Equal(len(published), 1) // the stale response must not override the newer one
	is.Equal(published[0].DisplayName, "fast")
}
