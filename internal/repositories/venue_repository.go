package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"urbanary/internal/models/db_models"
)

type VenueRepository interface {
	CreateVenue(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Venue, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error)
	ListFeatured(ctx context.Context, limit int) ([]db_models.Venue, error)
	ListByCategory(ctx context.Context, category string, page, pageSize int) ([]db_models.Venue, error)

	CreateCategory(ctx context.Context, category *db_models.VenueCategory) (uuid.UUID, error)
	ListCategories(ctx context.Context) ([]db_models.VenueCategory, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) CreateVenue(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(venue).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return venue.ID, nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *venueRepository) GetByID(ctx context.Context, id string) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := r.db.WithContext(ctx).
		Preload("Hours").
		First(&venue, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Preload("Hours").
		Offset(offset).
		Limit(pageSize).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) ListFeatured(ctx context.Context, limit int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := r.db.WithContext(ctx).
		Preload("Hours").
		Order("rating DESC, reviews DESC").
		Limit(limit).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) ListByCategory(ctx context.Context, category string, page, pageSize int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Preload("Hours").
		Where("? = ANY(categories)", category).
		Offset(offset).
		Limit(pageSize).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) CreateCategory(ctx context.Context, category *db_models.VenueCategory) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to create venue category: %w", err)
	}
	return category.ID, nil
}

func (r *venueRepository) ListCategories(ctx context.Context) ([]db_models.VenueCategory, error) {
	var categories []db_models.VenueCategory
	if err := r.db.WithContext(ctx).Order("category ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
