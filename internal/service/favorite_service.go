package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "estately/internal/errors"
	"estately/internal/model"
	"estately/internal/repository"
)

// FavoriteService manages a user's saved-properties list.
type FavoriteService interface {
	Add(ctx context.Context, userID, propertyID uint) (*model.Favorite, error)
	Remove(ctx context.Context, userID, propertyID uint) error
	ListMine(ctx context.Context, userID uint) ([]repository.FavoriteWithProperty, error)
	IsFavorited(ctx context.Context, userID, propertyID uint) (bool, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	propertyRepo repository.PropertyRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, propertyRepo repository.PropertyRepository) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo, propertyRepo: propertyRepo}
}

// Add saves a property to the user's favorites. Favoriting the same property
// twice is rejected.
func (s *favoriteService) Add(ctx context.Context, userID, propertyID uint) (*model.Favorite, error) {
	if propertyID == 0 {
		return nil, apperrors.NewValidation("Property ID is required")
	}
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Property not found")
		}
		return nil, err
	}

	if _, err := s.favoriteRepo.FindByUserAndProperty(ctx, userID, propertyID); err == nil {
		return nil, apperrors.ErrDuplicateFavorite
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	favorite := &model.Favorite{UserID: userID, PropertyID: propertyID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// Remove drops a property from the user's favorites.
func (s *favoriteService) Remove(ctx context.Context, userID, propertyID uint) error {
	favorite, err := s.favoriteRepo.FindByUserAndProperty(ctx, userID, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Property not found in favorites")
		}
		return err
	}
	return s.favoriteRepo.Delete(ctx, favorite.ID)
}

func (s *favoriteService) ListMine(ctx context.Context, userID uint) ([]repository.FavoriteWithProperty, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}

// IsFavorited reports whether the user has saved the property.
func (s *favoriteService) IsFavorited(ctx context.Context, userID, propertyID uint) (bool, error) {
	_, err := s.favoriteRepo.FindByUserAndProperty(ctx, userID, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
