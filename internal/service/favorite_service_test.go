package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "estately/internal/errors"
	"estately/internal/model"
)

func TestFavoriteService_Add(t *testing.T) {
	t.Run("successful add", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepository)
		propertyRepo := new(MockPropertyRepository)
		propertyRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.Property{ID: 9}, nil)
		favoriteRepo.On("FindByUserAndProperty", mock.Anything, uint(3), uint(9)).Return(nil, gorm.ErrRecordNotFound)
		favoriteRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Favorite")).Return(nil)

		service := NewFavoriteService(favoriteRepo, propertyRepo)
		favorite, err := service.Add(context.Background(), 3, 9)

		assert.NoError(t, err)
		assert.Equal(t, uint(3), favorite.UserID)
		assert.Equal(t, uint(9), favorite.PropertyID)
		favoriteRepo.AssertExpectations(t)
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepository)
		propertyRepo := new(MockPropertyRepository)
		propertyRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.Property{ID: 9}, nil)
		favoriteRepo.On("FindByUserAndProperty", mock.Anything, uint(3), uint(9)).Return(&model.Favorite{ID: 1}, nil)

		service := NewFavoriteService(favoriteRepo, propertyRepo)
		_, err := service.Add(context.Background(), 3, 9)

		assert.ErrorIs(t, err, apperrors.ErrDuplicateFavorite)
	})

	t.Run("unknown property", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepository)
		propertyRepo := new(MockPropertyRepository)
		propertyRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		service := NewFavoriteService(favoriteRepo, propertyRepo)
		_, err := service.Add(context.Background(), 3, 9)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.EqualError(t, err, "Property not found")
	})
}

func TestFavoriteService_Remove(t *testing.T) {
	t.Run("successful remove", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepository)
		propertyRepo := new(MockPropertyRepository)
		favoriteRepo.On("FindByUserAndProperty", mock.Anything, uint(3), uint(9)).Return(&model.Favorite{ID: 4}, nil)
		favoriteRepo.On("Delete", mock.Anything, uint(4)).Return(nil)

		service := NewFavoriteService(favoriteRepo, propertyRepo)
		err := service.Remove(context.Background(), 3, 9)

		assert.NoError(t, err)
		favoriteRepo.AssertExpectations(t)
	})

	t.Run("not favorited", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepository)
		propertyRepo := new(MockPropertyRepository)
		favoriteRepo.On("FindByUserAndProperty", mock.Anything, uint(3), uint(9)).Return(nil, gorm.ErrRecordNotFound)

		service := NewFavoriteService(favoriteRepo, propertyRepo)
		err := service.Remove(context.Background(), 3, 9)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.EqualError(t, err, "Property not found in favorites")
	})
}

func TestFavoriteService_IsFavorited(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	propertyRepo := new(MockPropertyRepository)
	favoriteRepo.On("FindByUserAndProperty", mock.Anything, uint(3), uint(9)).Return(&model.Favorite{ID: 4}, nil)
	favoriteRepo.On("FindByUserAndProperty", mock.Anything, uint(3), uint(10)).Return(nil, gorm.ErrRecordNotFound)

	service := NewFavoriteService(favoriteRepo, propertyRepo)

	favorited, err := service.IsFavorited(context.Background(), 3, 9)
	assert.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = service.IsFavorited(context.Background(), 3, 10)
	assert.NoError(t, err)
	assert.False(t, favorited)
}
