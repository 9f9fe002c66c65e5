package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"urbanary/internal/models/request_models"
	"urbanary/internal/models/response_models"
	"urbanary/internal/vocab"
	"urbanary/pkg/logger"
	"urbanary/pkg/memcache"
	"urbanary/pkg/utils"
)

const defaultMaxVenuesPerStep = 5

type SearchConfig struct {
	MaxVenuesPerStep int
	Rand             *rand.Rand
}

type SearchServiceInterface interface {
	HybridSearch(ctx context.Context, req request_models.HybridSearchRequest) (*response_models.HybridSearchResponse, error)
}

type SearchService struct {
	splitter   SplitterServiceInterface
	categories CategoryServiceInterface
	places     PlacesServiceInterface
	sessions   memcache.SearchResultStore
	log        logger.Logger
	maxVenues  int

	randMu sync.Mutex
	rng    *rand.Rand
}

func NewSearchService(
	splitter SplitterServiceInterface,
	categories CategoryServiceInterface,
	places PlacesServiceInterface,
	sessions memcache.SearchResultStore,
	cfg SearchConfig,
	log logger.Logger,
) SearchServiceInterface {
	if cfg.MaxVenuesPerStep <= 0 {
		cfg.MaxVenuesPerStep = defaultMaxVenuesPerStep
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SearchService{
		splitter:   splitter,
		categories: categories,
		places:     places,
		sessions:   sessions,
		log:        log,
		maxVenues:  cfg.MaxVenuesPerStep,
		rng:        rng,
	}
}

func (s *SearchService) HybridSearch(ctx context.Context, req request_models.HybridSearchRequest) (*response_models.HybridSearchResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, utils.ErrMissingSession
	}

	s.sessions.Sweep()

	if steps, ok := s.sessions.Get(req.SessionID, query); ok {
		s.log.Debug("session cache hit",
			zap.String("session_id", req.SessionID), zap.String("query", query))
		return &response_models.HybridSearchResponse{
			Input:  query,
			Steps:  steps,
			Cached: true,
		}, nil
	}

	fragments := s.splitter.Split(query)
	results := make([]response_models.StepResult, len(fragments))

	// Each step resolves independently; results land at their original
	// index so step order always mirrors mention order in the query.
	var wg sync.WaitGroup
	for i, fragment := range fragments {
		wg.Add(1)
		go func(i int, fragment string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.log.Error("step resolution panicked",
						zap.String("step", fragment), zap.Any("panic", r))
					results[i] = s.fallbackStep(i, fragment)
				}
			}()
			results[i] = s.resolveStep(ctx, i, fragment)
		}(i, fragment)
	}
	wg.Wait()

	s.sessions.Put(req.SessionID, query, results)

	return &response_models.HybridSearchResponse{
		Input:  query,
		Steps:  results,
		Cached: false,
	}, nil
}

func (s *SearchService) resolveStep(ctx context.Context, idx int, fragment string) response_models.StepResult {
	categories := s.categories.Extract(ctx, fragment)

	var venues []response_models.VenueResult
	if needsLookup(categories) {
		found, err := s.places.Lookup(ctx, fragment, categories, s.maxVenues)
		if err != nil {
			// A dead upstream degrades the step, not the whole search.
			s.log.Warn("place lookup failed",
				zap.String("step", fragment), zap.Error(err))
		} else {
			venues = found
		}
	}

	s.randMu.Lock()
	var paragraph string
	if len(venues) == 0 && unidentifiedOnly(categories) {
		paragraph = noMatchParagraph(fragment, s.rng)
	} else {
		paragraph = stepParagraph(fragment, categories, s.rng)
	}
	s.randMu.Unlock()

	return response_models.StepResult{
		Intent:     fmt.Sprintf("Visit %d", idx+1),
		Paragraph:  paragraph,
		Categories: categories,
		Venues:     venues,
	}
}

func unidentifiedOnly(categories []string) bool {
	return len(categories) == 1 && categories[0] == vocab.Unidentified
}

func (s *SearchService) fallbackStep(idx int, fragment string) response_models.StepResult {
	s.randMu.Lock()
	paragraph := noMatchParagraph(fragment, s.rng)
	s.randMu.Unlock()
	return response_models.StepResult{
		Intent:     fmt.Sprintf("Visit %d", idx+1),
		Paragraph:  paragraph,
		Categories: []string{vocab.Unidentified},
	}
}

// needsLookup decides whether a step warrants an external place search. A
// step is already answered once any of its categories is a concrete venue
// category; descriptor-only matches and unidentified steps go to the
// provider.
func needsLookup(categories []string) bool {
	for _, c := range categories {
		if c == vocab.Unidentified {
			return true
		}
	}
	for _, c := range categories {
		if vocab.ResolvedDeterministically(c) {
			return false
		}
	}
	return true
}
