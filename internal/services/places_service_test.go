package services

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"urbanary/pkg/logger"
	"urbanary/pkg/utils"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }
func boolPtr(v bool) *bool          { return &v }

func placesFixture() []placeResult {
	return []placeResult{
		{
			PlaceID:          "p1",
			Name:             "The Domino Club",
			FormattedAddress: "Grand Arcade, Leeds",
			Rating:           float64Ptr(4.7),
			UserRatingsTotal: intPtr(812),
			PriceLevel:       intPtr(3),
			Types:            []string{"bar", "point_of_interest"},
			Photos:           []placePhoto{{PhotoReference: "ref-1"}},
			OpeningHours:     &openingHours{OpenNow: boolPtr(true)},
		},
		{
			PlaceID:          "p2",
			Name:             "Serenity Day Spa",
			FormattedAddress: "Call Lane, Leeds",
			Rating:           float64Ptr(4.9),
			Types:            []string{"spa", "health"},
		},
		{
			PlaceID:          "p3",
			Name:             "Tavern on the Square",
			FormattedAddress: "City Square, Leeds",
			Rating:           float64Ptr(4.2),
			PriceLevel:       intPtr(1),
			Types:            []string{"bar", "restaurant"},
			OpeningHours:     &openingHours{OpenNow: boolPtr(false)},
		},
	}
}

func newPlacesTestServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/maps/api/place/textsearch/json":
			atomic.AddInt32(hits, 1)
			require.NotEmpty(t, r.URL.Query().Get("query"))
			json.NewEncoder(w).Encode(textSearchPayload{Results: placesFixture(), Status: "OK"})
		case "/maps/api/place/details/json":
			json.NewEncoder(w).Encode(detailsPayload{Result: placesFixture()[0], Status: "OK"})
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestPlacesService(baseURL string, clock func() time.Time) PlacesServiceInterface {
	return NewPlacesService(PlacesConfig{
		APIKey:   "test-key",
		BaseURL:  baseURL,
		HomeCity: "Leeds, UK",
		CacheTTL: time.Hour,
		Clock:    clock,
		Rand:     rand.New(rand.NewSource(1)),
	}, logger.NewNop())
}

func TestLookupFiltersIrrelevantVenues(t *testing.T) {
	var hits int32
	srv := newPlacesTestServer(t, &hits)
	defer srv.Close()

	s := newTestPlacesService(srv.URL, nil)
	venues, err := s.Lookup(context.Background(), "cocktail bars", []string{"Cocktail Bar"}, 5)
	require.NoError(t, err)

	require.Len(t, venues, 2)
	assert.Equal(t, "The Domino Club", venues[0].Name)
	assert.Equal(t, "Tavern on the Square", venues[1].Name)
	for _, v := range venues {
		assert.NotEqual(t, "Serenity Day Spa", v.Name)
	}
}

func TestLookupMapsVenueFields(t *testing.T) {
	var hits int32
	srv := newPlacesTestServer(t, &hits)
	defer srv.Close()

	s := newTestPlacesService(srv.URL, nil)
	venues, err := s.Lookup(context.Background(), "cocktail bars", []string{"Cocktail Bar"}, 5)
	require.NoError(t, err)
	require.NotEmpty(t, venues)

	v := venues[0]
	assert.Equal(t, "£££", v.Pricing)
	assert.Equal(t, "Open", v.OpenStatus)
	assert.Equal(t, "Bar", v.Category)
	require.NotNil(t, v.Rating)
	assert.Equal(t, 4.7, *v.Rating)
	require.NotNil(t, v.Image)
	assert.Contains(t, *v.Image, "photo_reference=ref-1")
	assert.Contains(t, v.Map, "https://www.google.com/maps/search/?api=1&query=")
	assert.Contains(t, v.Description, "The Domino Club")

	assert.Equal(t, "£", venues[1].Pricing)
	assert.Equal(t, "Closed", venues[1].OpenStatus)
}

func TestLookupCachesByLowercasedQuery(t *testing.T) {
	var hits int32
	srv := newPlacesTestServer(t, &hits)
	defer srv.Close()

	s := newTestPlacesService(srv.URL, nil)
	_, err := s.Lookup(context.Background(), "Cocktail Bars", []string{"Cocktail Bar"}, 5)
	require.NoError(t, err)
	_, err = s.Lookup(context.Background(), "cocktail BARS", []string{"Cocktail Bar"}, 5)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second lookup must be served from cache")
}

func TestLookupCacheExpires(t *testing.T) {
	var hits int32
	srv := newPlacesTestServer(t, &hits)
	defer srv.Close()

	current := time.Now()
	s := newTestPlacesService(srv.URL, func() time.Time { return current })

	_, err := s.Lookup(context.Background(), "cocktail bars", []string{"Cocktail Bar"}, 5)
	require.NoError(t, err)

	current = current.Add(61 * time.Minute)
	_, err = s.Lookup(context.Background(), "cocktail bars", []string{"Cocktail Bar"}, 5)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestLookupUnidentifiedSkipsFilter(t *testing.T) {
	var hits int32
	srv := newPlacesTestServer(t, &hits)
	defer srv.Close()

	s := newTestPlacesService(srv.URL, nil)
	venues, err := s.Lookup(context.Background(), "somewhere with dragons", []string{"Unidentified"}, 5)
	require.NoError(t, err)

	// no venue family can be inferred, so all raw results pass through
	assert.Len(t, venues, 3)
}

func TestTextSearchReturnsSummaries(t *testing.T) {
	var hits int32
	srv := newPlacesTestServer(t, &hits)
	defer srv.Close()

	s := newTestPlacesService(srv.URL, nil)
	summaries, err := s.TextSearch(context.Background(), "restaurants", 2)
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "p1", summaries[0].PlaceID)
	assert.Equal(t, "The Domino Club", summaries[0].Name)
}

func TestDetails(t *testing.T) {
	var hits int32
	srv := newPlacesTestServer(t, &hits)
	defer srv.Close()

	s := newTestPlacesService(srv.URL, nil)
	v, err := s.Details(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "The Domino Club", v.Name)
}

func TestLookupUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := newTestPlacesService(srv.URL, nil)
	_, err := s.Lookup(context.Background(), "cocktail bars", []string{"Cocktail Bar"}, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrUpstreamFailure)
}

func TestLookupRetriesTransientFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "flake", http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(textSearchPayload{Results: placesFixture(), Status: "OK"})
	}))
	defer srv.Close()

	s := newTestPlacesService(srv.URL, nil)
	venues, err := s.Lookup(context.Background(), "cocktail bars", []string{"Cocktail Bar"}, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, venues)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestOpenStatusClosingSoon(t *testing.T) {
	now := time.Date(2025, 3, 7, 22, 30, 0, 0, time.UTC) // Friday
	hours := &openingHours{
		OpenNow: boolPtr(true),
		Periods: []openerPeriod{{
			Open:  periodPoint{Day: 5, Time: "1700"},
			Close: &periodPoint{Day: 5, Time: "2300"},
		}},
	}
	assert.Equal(t, "Closing soon", openStatus(hours, now))

	early := time.Date(2025, 3, 7, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "Open", openStatus(hours, early))

	assert.Equal(t, "Unknown", openStatus(nil, now))
	assert.Equal(t, "Unknown", openStatus(&openingHours{}, now))
}

func TestPriceSymbol(t *testing.T) {
	assert.Equal(t, "Unknown", priceSymbol(nil))
	assert.Equal(t, "Free", priceSymbol(intPtr(0)))
	assert.Equal(t, "£", priceSymbol(intPtr(1)))
	assert.Equal(t, "££", priceSymbol(intPtr(2)))
	assert.Equal(t, "£££", priceSymbol(intPtr(3)))
	assert.Equal(t, "££££", priceSymbol(intPtr(4)))
	assert.Equal(t, "££££", priceSymbol(intPtr(7)))
}
