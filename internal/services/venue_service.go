package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"urbanary/internal/models/db_models"
	"urbanary/internal/models/request_models"
	"urbanary/internal/models/response_models"
	"urbanary/internal/repositories"
	"urbanary/pkg/logger"
	"urbanary/pkg/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	featuredLimit   = 10
)

type VenueServiceInterface interface {
	CreateVenue(ctx context.Context, req request_models.CreateVenueRequest) (uuid.UUID, error)
	GetVenue(ctx context.Context, id string) (*response_models.Venue, error)
	ListVenues(ctx context.Context, page, pageSize int) ([]response_models.Venue, error)
	ListFeatured(ctx context.Context) ([]response_models.Venue, error)
	ListByCategory(ctx context.Context, category string, page, pageSize int) ([]response_models.Venue, error)

	CreateCategory(ctx context.Context, req request_models.CreateVenueCategoryRequest) (uuid.UUID, error)
	ListCategories(ctx context.Context) ([]response_models.VenueCategory, error)
}

type VenueService struct {
	repo repositories.VenueRepository
	log  logger.Logger
}

func NewVenueService(repo repositories.VenueRepository, log logger.Logger) VenueServiceInterface {
	return &VenueService{repo: repo, log: log}
}

func (s *VenueService) CreateVenue(ctx context.Context, req request_models.CreateVenueRequest) (uuid.UUID, error) {
	if req.Rating < 0 || req.Rating > 5 {
		return uuid.Nil, utils.ErrInvalidInput
	}
	if req.Reviews < 0 {
		return uuid.Nil, utils.ErrInvalidInput
	}

	// Categories are stored lowercased so array membership queries stay
	// case-insensitive without an expression index.
	categories := make([]string, 0, len(req.Categories))
	for _, c := range req.Categories {
		if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
			categories = append(categories, c)
		}
	}

	venue := &db_models.Venue{
		Image:       req.Image,
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		MapLink:     req.MapLink,
		Categories:  categories,
		Rating:      req.Rating,
		Reviews:     req.Reviews,
	}
	for _, h := range req.Hours {
		venue.Hours = append(venue.Hours, db_models.VenueHour{
			Day:   h.Day,
			Open:  h.Open,
			Close: h.Close,
		})
	}

	id, err := s.repo.CreateVenue(ctx, venue)
	if err != nil {
		s.log.Error("failed to create venue", zap.String("name", req.Name), zap.Error(err))
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *VenueService) GetVenue(ctx context.Context, id string) (*response_models.Venue, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidInput
	}

	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if venue == nil {
		return nil, utils.ErrVenueNotFound
	}
	out := toVenueResponse(*venue)
	return &out, nil
}

func (s *VenueService) ListVenues(ctx context.Context, page, pageSize int) ([]response_models.Venue, error) {
	page, pageSize, err := normalizePaging(page, pageSize)
	if err != nil {
		return nil, err
	}
	venues, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toVenueResponses(venues), nil
}

func (s *VenueService) ListFeatured(ctx context.Context) ([]response_models.Venue, error) {
	venues, err := s.repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toVenueResponses(venues), nil
}

func (s *VenueService) ListByCategory(ctx context.Context, category string, page, pageSize int) ([]response_models.Venue, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, utils.ErrInvalidInput
	}
	page, pageSize, err := normalizePaging(page, pageSize)
	if err != nil {
		return nil, err
	}
	venues, err := s.repo.ListByCategory(ctx, category, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toVenueResponses(venues), nil
}

func (s *VenueService) CreateCategory(ctx context.Context, req request_models.CreateVenueCategoryRequest) (uuid.UUID, error) {
	category := strings.ToLower(strings.TrimSpace(req.Category))
	if category == "" {
		return uuid.Nil, utils.ErrInvalidInput
	}
	id, err := s.repo.CreateCategory(ctx, &db_models.VenueCategory{Category: category})
	if err != nil {
		s.log.Error("failed to create venue category", zap.String("category", category), zap.Error(err))
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *VenueService) ListCategories(ctx context.Context) ([]response_models.VenueCategory, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.VenueCategory, 0, len(categories))
	for _, c := range categories {
		out = append(out, response_models.VenueCategory{
			ID:       c.ID.String(),
			Category: c.Category,
		})
	}
	return out, nil
}

func normalizePaging(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		return 0, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, utils.ErrInvalidPageSize
	}
	return page, pageSize, nil
}

func toVenueResponse(v db_models.Venue) response_models.Venue {
	hours := make([]response_models.VenueHour, 0, len(v.Hours))
	for _, h := range v.Hours {
		hours = append(hours, response_models.VenueHour{
			Day:   h.Day,
			Open:  h.Open,
			Close: h.Close,
		})
	}
	return response_models.Venue{
		ID:          v.ID.String(),
		Image:       v.Image,
		Name:        v.Name,
		Description: v.Description,
		Phone:       v.Phone,
		MapLink:     v.MapLink,
		Categories:  v.Categories,
		Rating:      v.Rating,
		Reviews:     v.Reviews,
		Hours:       hours,
	}
}

func toVenueResponses(venues []db_models.Venue) []response_models.Venue {
	out := make([]response_models.Venue, 0, len(venues))
	for _, v := range venues {
		out = append(out, toVenueResponse(v))
	}
	return out
}
