package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"urbanary/internal/models/request_models"
	"urbanary/internal/models/response_models"
	"urbanary/pkg/logger"
	"urbanary/pkg/utils"
)

type scriptedPlaces struct {
	searchQuery string
	summaries   []PlaceSummary
	searchErr   error
	details     map[string]*response_models.VenueResult
}

func (f *scriptedPlaces) Lookup(context.Context, string, []string, int) ([]response_models.VenueResult, error) {
	return nil, errors.New("not implemented")
}

func (f *scriptedPlaces) TextSearch(_ context.Context, query string, _ int) ([]PlaceSummary, error) {
	f.searchQuery = query
	return f.summaries, f.searchErr
}

func (f *scriptedPlaces) Details(_ context.Context, placeID string) (*response_models.VenueResult, error) {
	v, ok := f.details[placeID]
	if !ok {
		return nil, errors.New("no such place")
	}
	return v, nil
}

func venue(name, status string, rating float64) *response_models.VenueResult {
	return &response_models.VenueResult{Name: name, OpenStatus: status, Rating: &rating}
}

func TestAskRejectsEmptyMessage(t *testing.T) {
	s := NewAssistantService(&scriptedPlaces{}, "Leeds", logger.NewNop())

	_, err := s.Ask(context.Background(), request_models.AssistantRequest{Message: "  "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAskOffTopicRedirects(t *testing.T) {
	places := &scriptedPlaces{}
	s := NewAssistantService(places, "Leeds", logger.NewNop())

	resp, err := s.Ask(context.Background(), request_models.AssistantRequest{
		Message: "how do I renew my passport",
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "Leeds")
	assert.Empty(t, resp.Venues)
	assert.Empty(t, places.searchQuery, "off-topic messages must not trigger a search")
}

func TestAskSearchesMatchedKeywords(t *testing.T) {
	places := &scriptedPlaces{
		summaries: []PlaceSummary{{PlaceID: "p1", Name: "Solid Bar"}},
		details: map[string]*response_models.VenueResult{
			"p1": venue("Solid Bar", "Open", 4.5),
		},
	}
	s := NewAssistantService(places, "Leeds", logger.NewNop())

	resp, err := s.Ask(context.Background(), request_models.AssistantRequest{
		Message: "any good cocktails and nightlife around?",
	})
	require.NoError(t, err)

	assert.Contains(t, places.searchQuery, "cocktails")
	assert.Contains(t, places.searchQuery, "nightlife")
	require.Len(t, resp.Venues, 1)
	assert.Equal(t, "Solid Bar", resp.Venues[0].Name)
	assert.Contains(t, resp.Reply, "top spots in Leeds")
}

func TestAskSortsOpenFirstThenRating(t *testing.T) {
	places := &scriptedPlaces{
		summaries: []PlaceSummary{
			{PlaceID: "a"}, {PlaceID: "b"}, {PlaceID: "c"}, {PlaceID: "d"},
		},
		details: map[string]*response_models.VenueResult{
			"a": venue("Closed High", "Closed", 4.9),
			"b": venue("Open Low", "Open", 3.1),
			"c": venue("Open High", "Open", 4.7),
			"d": venue("Closed Low", "Closed", 2.0),
		},
	}
	s := NewAssistantService(places, "Leeds", logger.NewNop())

	resp, err := s.Ask(context.Background(), request_models.AssistantRequest{
		Message: "best bars please",
	})
	require.NoError(t, err)
	require.Len(t, resp.Venues, 4)

	var names []string
	for _, v := range resp.Venues {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"Open High", "Open Low", "Closed High", "Closed Low"}, names)
}

func TestAskDropsFailedDetails(t *testing.T) {
	places := &scriptedPlaces{
		summaries: []PlaceSummary{{PlaceID: "ok"}, {PlaceID: "broken"}},
		details: map[string]*response_models.VenueResult{
			"ok": venue("Reachable", "Open", 4.0),
		},
	}
	s := NewAssistantService(places, "Leeds", logger.NewNop())

	resp, err := s.Ask(context.Background(), request_models.AssistantRequest{
		Message: "dinner ideas",
	})
	require.NoError(t, err)
	require.Len(t, resp.Venues, 1)
	assert.Equal(t, "Reachable", resp.Venues[0].Name)
}

func TestAskNoResults(t *testing.T) {
	s := NewAssistantService(&scriptedPlaces{}, "Leeds", logger.NewNop())

	resp, err := s.Ask(context.Background(), request_models.AssistantRequest{
		Message: "dinner ideas",
	})
	require.NoError(t, err)
	assert.Equal(t, "No spots found.", resp.Reply)
	assert.Empty(t, resp.Venues)
}

func TestAskSearchFailureDegrades(t *testing.T) {
	places := &scriptedPlaces{searchErr: errors.New("provider down")}
	s := NewAssistantService(places, "Leeds", logger.NewNop())

	resp, err := s.Ask(context.Background(), request_models.AssistantRequest{
		Message: "dinner ideas",
	})
	require.NoError(t, err, "provider failure must not surface as an API error")
	assert.Equal(t, "Something went wrong. Please try again later.", resp.Reply)
	assert.Empty(t, resp.Venues)
}
