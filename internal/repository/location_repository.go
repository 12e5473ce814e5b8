package repository

import (
	"context"

	"gorm.io/gorm"

	"estately/internal/model"
)

// LocationRepository defines location persistence operations.
type LocationRepository interface {
	Create(ctx context.Context, location *model.Location) error
	FindByID(ctx context.Context, id uint) (*model.Location, error)
	ListActive(ctx context.Context) ([]model.Location, error)
	FindByCity(ctx context.Context, city string) ([]model.Location, error)
	Search(ctx context.Context, term string) ([]model.Location, error)
	Update(ctx context.Context, location *model.Location) error
	SetActive(ctx context.Context, id uint, active bool) error
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository.
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) FindByID(ctx context.Context, id uint) (*model.Location, error) {
	var location model.Location
	if err := r.db.WithContext(ctx).First(&location, id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) ListActive(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) FindByCity(ctx context.Context, city string) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).
		Where("city = ? AND is_active = ?", city, true).
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// Search matches the term case-insensitively against name, city and state.
func (r *locationRepository) Search(ctx context.Context, term string) ([]model.Location, error) {
	like := "%" + term + "%"
	var locations []model.Location
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(location_name) LIKE LOWER(?) OR LOWER(city) LIKE LOWER(?) OR LOWER(state) LIKE LOWER(?)",
			like, like, like).
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) Update(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

// SetActive toggles the soft-delete flag.
func (r *locationRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).Model(&model.Location{}).
		Where("location_id = ?", id).
		Update("is_active", active).Error
}
