package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"estately/internal/auth"
	apperrors "estately/internal/errors"
	"estately/internal/model"
	"estately/internal/repository"
)

func TestReviewService_Create(t *testing.T) {
	t.Run("successful review awaits moderation", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		propertyRepo := new(MockPropertyRepository)
		propertyRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.Property{ID: 9}, nil)
		reviewRepo.On("FindByUserAndProperty", mock.Anything, uint(3), uint(9)).Return(nil, gorm.ErrRecordNotFound)
		reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

		service := NewReviewService(reviewRepo, propertyRepo)
		review, err := service.Create(context.Background(), 3, ReviewInput{PropertyID: 9, Rating: 4, Comment: "Nice place"})

		assert.NoError(t, err)
		assert.False(t, review.IsApproved)
		assert.Equal(t, 4, review.Rating)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("rating out of range", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		propertyRepo := new(MockPropertyRepository)

		service := NewReviewService(reviewRepo, propertyRepo)
		_, err := service.Create(context.Background(), 3, ReviewInput{PropertyID: 9, Rating: 6})

		assert.EqualError(t, err, "Rating must be between 1 and 5")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("one review per property", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		propertyRepo := new(MockPropertyRepository)
		propertyRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.Property{ID: 9}, nil)
		reviewRepo.On("FindByUserAndProperty", mock.Anything, uint(3), uint(9)).Return(&model.Review{ID: 1}, nil)

		service := NewReviewService(reviewRepo, propertyRepo)
		_, err := service.Create(context.Background(), 3, ReviewInput{PropertyID: 9, Rating: 4})

		assert.ErrorIs(t, err, apperrors.ErrDuplicateReview)
	})
}

func TestReviewService_Update(t *testing.T) {
	t.Run("edit resets approval", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		propertyRepo := new(MockPropertyRepository)
		reviewRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Review{
			ID: 5, UserID: 3, Rating: 4, IsApproved: true,
		}, nil)
		reviewRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

		service := NewReviewService(reviewRepo, propertyRepo)
		review, err := service.Update(context.Background(), auth.Identity{UserID: 3}, 5, ReviewInput{Rating: 2, Comment: "Changed my mind"})

		assert.NoError(t, err)
		assert.False(t, review.IsApproved)
		assert.Equal(t, 2, review.Rating)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("absent fields keep stored values", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		propertyRepo := new(MockPropertyRepository)
		reviewRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Review{
			ID: 5, UserID: 3, Rating: 4, Comment: "Spacious", IsApproved: true,
		}, nil)
		reviewRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

		service := NewReviewService(reviewRepo, propertyRepo)
		review, err := service.Update(context.Background(), auth.Identity{UserID: 3}, 5, ReviewInput{Comment: "Spacious but noisy"})

		assert.NoError(t, err)
		assert.Equal(t, 4, review.Rating)
		assert.Equal(t, "Spacious but noisy", review.Comment)
		assert.False(t, review.IsApproved)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("provided rating is still validated", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		propertyRepo := new(MockPropertyRepository)
		reviewRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Review{ID: 5, UserID: 3, Rating: 4}, nil)

		service := NewReviewService(reviewRepo, propertyRepo)
		_, err := service.Update(context.Background(), auth.Identity{UserID: 3}, 5, ReviewInput{Rating: 7})

		assert.EqualError(t, err, "Rating must be between 1 and 5")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("only the author may edit", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		propertyRepo := new(MockPropertyRepository)
		reviewRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Review{ID: 5, UserID: 3}, nil)

		service := NewReviewService(reviewRepo, propertyRepo)
		_, err := service.Update(context.Background(), auth.Identity{UserID: 4}, 5, ReviewInput{Rating: 2})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestReviewService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		identity auth.Identity
		wantErr  bool
	}{
		{name: "author deletes own review", identity: auth.Identity{UserID: 3, Role: model.RoleUser}},
		{name: "admin deletes any review", identity: auth.Identity{UserID: 99, Role: model.RoleAdmin}},
		{name: "stranger forbidden", identity: auth.Identity{UserID: 4, Role: model.RoleUser}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviewRepo := new(MockReviewRepository)
			propertyRepo := new(MockPropertyRepository)
			reviewRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Review{ID: 5, UserID: 3}, nil)
			if !tt.wantErr {
				reviewRepo.On("Delete", mock.Anything, uint(5)).Return(nil)
			}

			service := NewReviewService(reviewRepo, propertyRepo)
			err := service.Delete(context.Background(), tt.identity, 5)

			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
			reviewRepo.AssertExpectations(t)
		})
	}
}

func TestReviewService_ListByProperty(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	propertyRepo := new(MockPropertyRepository)
	reviewRepo.On("FindApprovedByProperty", mock.Anything, uint(9)).Return([]repository.ReviewWithUser{
		{Review: model.Review{ID: 1, Rating: 5, IsApproved: true}, UserName: "Asha"},
	}, nil)
	reviewRepo.On("RatingStats", mock.Anything, uint(9)).Return(&repository.RatingStats{
		TotalReviews: 1, AverageRating: 5,
	}, nil)

	service := NewReviewService(reviewRepo, propertyRepo)
	reviews, stats, err := service.ListByProperty(context.Background(), 9)

	assert.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, int64(1), stats.TotalReviews)
	assert.InDelta(t, 5.0, stats.AverageRating, 0.001)
}
