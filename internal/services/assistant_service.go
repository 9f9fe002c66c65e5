package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"urbanary/internal/models/request_models"
	"urbanary/internal/models/response_models"
	"urbanary/pkg/logger"
	"urbanary/pkg/utils"
)

// allowedTopics gates the assistant to venue discovery. Anything else gets a
// polite redirect instead of a search.
var allowedTopics = []string{
	"restaurant", "restaurants", "dinner", "lunch", "brunch", "breakfast", "food",
	"meal", "eat", "places to eat", "buffet", "cafe", "cafes", "chinese", "italian",
	"indian", "french", "mexican", "thai", "japanese", "street food", "fine dining",
	"rooftop restaurant", "bar", "bars", "pub", "lounges", "nightclub", "nightclubs",
	"nightlife", "club", "clubs", "drinks", "cocktails", "alcohol", "beer", "wine",
	"happy hour", "hookah", "shisha", "dance floor", "casino", "casinos",
}

const assistantMaxResults = 10

type AssistantServiceInterface interface {
	Ask(ctx context.Context, req request_models.AssistantRequest) (*response_models.AssistantResponse, error)
}

type AssistantService struct {
	places   PlacesServiceInterface
	cityName string
	log      logger.Logger
}

func NewAssistantService(places PlacesServiceInterface, cityName string, log logger.Logger) AssistantServiceInterface {
	if cityName == "" {
		cityName = "Leeds"
	}
	return &AssistantService{places: places, cityName: cityName, log: log}
}

func (s *AssistantService) Ask(ctx context.Context, req request_models.AssistantRequest) (*response_models.AssistantResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, utils.ErrInvalidInput
	}

	messageLower := strings.ToLower(message)
	var keywords []string
	for _, topic := range allowedTopics {
		if strings.Contains(messageLower, topic) {
			keywords = append(keywords, topic)
		}
	}
	if len(keywords) == 0 {
		return &response_models.AssistantResponse{
			Reply: "Hi! I can help you find top spots in " + s.cityName +
				": restaurants, bars, pubs, and more!",
			Venues: []response_models.VenueResult{},
		}, nil
	}

	summaries, err := s.places.TextSearch(ctx, strings.Join(keywords, " "), assistantMaxResults)
	if err != nil {
		s.log.Warn("assistant search failed", zap.Error(err))
		return s.degraded(), nil
	}
	if len(summaries) == 0 {
		return &response_models.AssistantResponse{
			Reply:  "No spots found.",
			Venues: []response_models.VenueResult{},
		}, nil
	}

	// Details calls fan out; failed ones are simply dropped from the list.
	venues := make([]*response_models.VenueResult, len(summaries))
	var wg sync.WaitGroup
	for i, summary := range summaries {
		wg.Add(1)
		go func(i int, placeID string) {
			defer wg.Done()
			v, err := s.places.Details(ctx, placeID)
			if err != nil {
				s.log.Warn("place details failed",
					zap.String("place_id", placeID), zap.Error(err))
				return
			}
			venues[i] = v
		}(i, summary.PlaceID)
	}
	wg.Wait()

	collected := make([]response_models.VenueResult, 0, len(venues))
	for _, v := range venues {
		if v != nil {
			collected = append(collected, *v)
		}
	}

	sort.SliceStable(collected, func(i, j int) bool {
		openI := collected[i].OpenStatus == "Open"
		openJ := collected[j].OpenStatus == "Open"
		if openI != openJ {
			return openI
		}
		return ratingOf(collected[i]) > ratingOf(collected[j])
	})

	return &response_models.AssistantResponse{
		Reply:  "Here are some top spots in " + s.cityName + " based on your search:",
		Venues: collected,
	}, nil
}

func (s *AssistantService) degraded() *response_models.AssistantResponse {
	return &response_models.AssistantResponse{
		Reply:  "Something went wrong. Please try again later.",
		Venues: []response_models.VenueResult{},
	}
}

func ratingOf(v response_models.VenueResult) float64 {
	if v.Rating == nil {
		return 0
	}
	return *v.Rating
}
