package repository

import (
	"context"

	"gorm.io/gorm"

	"estately/internal/model"
)

// FavoriteWithProperty pairs a favorite with its property for presentation.
type FavoriteWithProperty struct {
	model.Favorite
	Property model.Property `json:"property" gorm:"-"`
}

// FavoriteRepository defines favorite persistence operations.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	FindByUserAndProperty(ctx context.Context, userID, propertyID uint) (*model.Favorite, error)
	ListByUser(ctx context.Context, userID uint) ([]FavoriteWithProperty, error)
	CountByProperty(ctx context.Context, propertyID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) FindByUserAndProperty(ctx context.Context, userID, propertyID uint) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// ListByUser resolves each favorite's property in a second explicit query.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]FavoriteWithProperty, error) {
	var favorites []model.Favorite
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return []FavoriteWithProperty{}, nil
	}

	ids := make([]uint, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.PropertyID)
	}

	var properties []model.Property
	if err := r.db.WithContext(ctx).Where("property_id IN ?", ids).Find(&properties).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}

	rows := make([]FavoriteWithProperty, 0, len(favorites))
	for _, f := range favorites {
		rows = append(rows, FavoriteWithProperty{Favorite: f, Property: byID[f.PropertyID]})
	}
	return rows, nil
}

func (r *favoriteRepository) CountByProperty(ctx context.Context, propertyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("property_id = ?", propertyID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Favorite{}, id).Error
}
