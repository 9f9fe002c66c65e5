package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"urbanary/internal/models/response_models"
	"urbanary/internal/vocab"
	"urbanary/pkg/logger"
	"urbanary/pkg/utils"
)

const (
	defaultPlacesBaseURL = "https://maps.googleapis.com"
	defaultHomeCity      = "Leeds, UK"
	defaultPlacesTTL     = 60 * time.Minute
	placesMaxAttempts    = 2
	placesRetryBackoff   = 200 * time.Millisecond
	photoMaxWidth        = 600
)

type PlacesConfig struct {
	APIKey   string
	BaseURL  string
	HomeCity string
	CacheTTL time.Duration
	Timeout  time.Duration

	// Clock and Rand are only swapped in tests.
	Clock func() time.Time
	Rand  *rand.Rand
}

// PlaceSummary is the thin result of a text search, enough to fetch details.
type PlaceSummary struct {
	PlaceID string
	Name    string
}

type PlacesServiceInterface interface {
	// Lookup runs a text search scoped to the home city, filters out venues
	// that do not fit the requested categories and maps the rest into
	// presentable results.
	Lookup(ctx context.Context, query string, categories []string, maxResults int) ([]response_models.VenueResult, error)

	// TextSearch returns raw summaries without relevance filtering.
	TextSearch(ctx context.Context, query string, maxResults int) ([]PlaceSummary, error)

	// Details resolves a single place id to a full result.
	Details(ctx context.Context, placeID string) (*response_models.VenueResult, error)
}

type PlacesService struct {
	cfg    PlacesConfig
	client *http.Client
	log    logger.Logger
	cache  *placesCache

	randMu sync.Mutex
	rng    *rand.Rand
}

func NewPlacesService(cfg PlacesConfig, log logger.Logger) PlacesServiceInterface {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultPlacesBaseURL
	}
	if cfg.HomeCity == "" {
		cfg.HomeCity = defaultHomeCity
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultPlacesTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PlacesService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
		cache:  newPlacesCache(cfg.CacheTTL, cfg.Clock),
		rng:    rng,
	}
}

// placeResult mirrors the fields we consume from the Places payloads.
type placeResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Rating           *float64      `json:"rating"`
	UserRatingsTotal *int          `json:"user_ratings_total"`
	PriceLevel       *int          `json:"price_level"`
	Icon             string        `json:"icon"`
	Types            []string      `json:"types"`
	Photos           []placePhoto  `json:"photos"`
	OpeningHours     *openingHours `json:"opening_hours"`
	FormattedPhone   *string       `json:"formatted_phone_number"`
	Website          *string       `json:"website"`
}

type placePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

type openingHours struct {
	OpenNow *bool          `json:"open_now"`
	Periods []openerPeriod `json:"periods"`
}

type openerPeriod struct {
	Open  periodPoint  `json:"open"`
	Close *periodPoint `json:"close"`
}

type periodPoint struct {
	Day  int    `json:"day"`
	Time string `json:"time"` // "HHMM"
}

type textSearchPayload struct {
	Results []placeResult `json:"results"`
	Status  string        `json:"status"`
}

type detailsPayload struct {
	Result placeResult `json:"result"`
	Status string      `json:"status"`
}

func (s *PlacesService) Lookup(ctx context.Context, query string, categories []string, maxResults int) ([]response_models.VenueResult, error) {
	raw, cached, err := s.rawSearch(ctx, query)
	if err != nil {
		return nil, err
	}
	if cached {
		s.log.Debug("places cache hit", zap.String("query", query))
	}

	filtered := filterRelevant(raw, categories, query)
	if maxResults > 0 && len(filtered) > maxResults {
		filtered = filtered[:maxResults]
	}

	venues := make([]response_models.VenueResult, 0, len(filtered))
	for _, p := range filtered {
		venues = append(venues, s.toVenueResult(p))
	}
	return venues, nil
}

func (s *PlacesService) TextSearch(ctx context.Context, query string, maxResults int) ([]PlaceSummary, error) {
	raw, _, err := s.rawSearch(ctx, query)
	if err != nil {
		return nil, err
	}
	if maxResults > 0 && len(raw) > maxResults {
		raw = raw[:maxResults]
	}
	summaries := make([]PlaceSummary, 0, len(raw))
	for _, p := range raw {
		summaries = append(summaries, PlaceSummary{PlaceID: p.PlaceID, Name: p.Name})
	}
	return summaries, nil
}

func (s *PlacesService) Details(ctx context.Context, placeID string) (*response_models.VenueResult, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "place_id,name,formatted_address,rating,user_ratings_total,price_level,types,photos,opening_hours,formatted_phone_number,website")
	q.Set("key", s.cfg.APIKey)

	var payload detailsPayload
	if err := s.fetchJSON(ctx, "/maps/api/place/details/json?"+q.Encode(), &payload); err != nil {
		return nil, err
	}
	if payload.Status != "OK" {
		return nil, fmt.Errorf("%w: place details status %s", utils.ErrUpstreamFailure, payload.Status)
	}
	v := s.toVenueResult(payload.Result)
	return &v, nil
}

// rawSearch returns the unfiltered upstream results for a query, serving from
// the provider cache when fresh. The cache holds pre-filter results so the
// same query can be reused under different category filters.
func (s *PlacesService) rawSearch(ctx context.Context, query string) ([]placeResult, bool, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if hit, ok := s.cache.get(key); ok {
		return hit, true, nil
	}

	q := url.Values{}
	q.Set("query", query+" "+s.cfg.HomeCity)
	q.Set("key", s.cfg.APIKey)

	var payload textSearchPayload
	if err := s.fetchJSON(ctx, "/maps/api/place/textsearch/json?"+q.Encode(), &payload); err != nil {
		return nil, false, err
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, false, fmt.Errorf("%w: text search status %s", utils.ErrUpstreamFailure, payload.Status)
	}

	s.cache.put(key, payload.Results)
	return payload.Results, false, nil
}

func (s *PlacesService) fetchJSON(ctx context.Context, path string, out any) error {
	var lastErr error
	for attempt := 1; attempt <= placesMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(placesRetryBackoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+path, nil)
		if err != nil {
			return err
		}
		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			s.log.Warn("places request failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("%w: places responded %d", utils.ErrUpstreamFailure, resp.StatusCode)
			continue
		}
		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
			continue
		}
		return nil
	}
	return fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, lastErr)
}

func (s *PlacesService) toVenueResult(p placeResult) response_models.VenueResult {
	var image *string
	if len(p.Photos) > 0 && p.Photos[0].PhotoReference != "" {
		u := fmt.Sprintf("%s/maps/api/place/photo?maxwidth=%d&photo_reference=%s&key=%s",
			s.cfg.BaseURL, photoMaxWidth, url.QueryEscape(p.Photos[0].PhotoReference), s.cfg.APIKey)
		image = &u
	}

	mapURL := "https://www.google.com/maps/search/?api=1&query=" +
		url.QueryEscape(p.Name+" "+p.FormattedAddress)

	category := ""
	if len(p.Types) > 0 {
		category = humanizeType(p.Types[0])
	}

	s.randMu.Lock()
	desc := describeVenue(p.Name, s.rng)
	s.randMu.Unlock()

	return response_models.VenueResult{
		Name:        p.Name,
		Description: desc,
		Category:    category,
		Image:       image,
		Logo:        p.Icon,
		Pricing:     priceSymbol(p.PriceLevel),
		OpenStatus:  openStatus(p.OpeningHours, s.cfg.Clock()),
		Phone:       p.FormattedPhone,
		Rating:      p.Rating,
		Reviews:     p.UserRatingsTotal,
		Map:         mapURL,
	}
}

// priceSymbol maps the numeric price level onto pound signs. Level 0 means
// free entry; an absent level stays unknown rather than guessed.
func priceSymbol(level *int) string {
	if level == nil {
		return "Unknown"
	}
	switch {
	case *level <= 0:
		return "Free"
	case *level == 1:
		return "£"
	case *level == 2:
		return "££"
	case *level == 3:
		return "£££"
	default:
		return "££££"
	}
}

// openStatus renders opening hours as a short label. "Closing soon" means the
// current period ends within the next hour.
func openStatus(h *openingHours, now time.Time) string {
	if h == nil || h.OpenNow == nil {
		return "Unknown"
	}
	if !*h.OpenNow {
		return "Closed"
	}
	for _, period := range h.Periods {
		if period.Close == nil {
			continue // open 24/7
		}
		closeAt, ok := nextCloseTime(period, now)
		if !ok {
			continue
		}
		until := closeAt.Sub(now)
		if until > 0 && until <= time.Hour {
			return "Closing soon"
		}
	}
	return "Open"
}

// nextCloseTime resolves a period's closing point to the closest wall-clock
// instant at or after the start of today, handling periods that wrap past
// midnight.
func nextCloseTime(p openerPeriod, now time.Time) (time.Time, bool) {
	if p.Close == nil || len(p.Close.Time) != 4 {
		return time.Time{}, false
	}
	hh := int(p.Close.Time[0]-'0')*10 + int(p.Close.Time[1]-'0')
	mm := int(p.Close.Time[2]-'0')*10 + int(p.Close.Time[3]-'0')
	if hh > 23 || mm > 59 {
		return time.Time{}, false
	}

	dayDiff := p.Close.Day - int(now.Weekday())
	if dayDiff < 0 {
		dayDiff += 7
	}
	closeAt := time.Date(now.Year(), now.Month(), now.Day(), hh, mm, 0, 0, now.Location()).
		AddDate(0, 0, dayDiff)
	return closeAt, true
}

func humanizeType(t string) string {
	words := strings.Split(t, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// filterRelevant drops upstream results whose place types contradict the
// requested categories. A nightlife search should never surface a spa that
// happens to mention cocktails in its blurb.
func filterRelevant(results []placeResult, categories []string, query string) []placeResult {
	family := inferFamily(categories, query)
	if family == familyAny {
		return results
	}

	allow, deny := familyTypes(family)
	filtered := make([]placeResult, 0, len(results))
	for _, p := range results {
		if keepForFamily(p.Types, allow, deny) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

type venueFamily int

const (
	familyAny venueFamily = iota
	familyDining
	familyNightlife
	familyCafe
)

var familyHints = map[venueFamily][]string{
	familyNightlife: {"bar", "pub", "club", "nightclub", "cocktail", "beer", "wine", "drink", "pint"},
	familyDining:    {"restaurant", "food", "dinner", "lunch", "brunch", "breakfast", "eat", "pizza", "burger", "sushi", "curry"},
	familyCafe:      {"cafe", "coffee", "tea", "bakery", "brunch"},
}

func inferFamily(categories []string, query string) venueFamily {
	haystack := vocab.Normalize(query)
	for _, c := range categories {
		if c != vocab.Unidentified {
			haystack += " " + vocab.Normalize(c)
		}
	}
	for _, family := range []venueFamily{familyNightlife, familyDining, familyCafe} {
		for _, hint := range familyHints[family] {
			if vocab.ContainsWord(haystack, hint) {
				return family
			}
		}
	}
	return familyAny
}

func familyTypes(f venueFamily) (allow, deny map[string]bool) {
	deny = map[string]bool{
		"spa": true, "sauna": true, "gym": true, "lodging": true,
		"beauty_salon": true, "hair_care": true,
	}
	switch f {
	case familyNightlife:
		allow = map[string]bool{
			"bar": true, "night_club": true, "pub": true, "restaurant": true,
			"casino": true, "bowling_alley": true,
		}
	case familyDining:
		allow = map[string]bool{
			"restaurant": true, "food": true, "meal_takeaway": true,
			"meal_delivery": true, "cafe": true, "bakery": true, "bar": true,
		}
	case familyCafe:
		allow = map[string]bool{
			"cafe": true, "bakery": true, "restaurant": true, "food": true,
		}
	}
	return allow, deny
}

func keepForFamily(types []string, allow, deny map[string]bool) bool {
	allowed := false
	for _, t := range types {
		if deny[t] {
			return false
		}
		if allow[t] {
			allowed = true
		}
	}
	return allowed
}
