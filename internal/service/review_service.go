package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"estately/internal/auth"
	apperrors "estately/internal/errors"
	"estately/internal/model"
	"estately/internal/repository"
	"estately/internal/validation"
)

// ReviewInput carries the fields accepted when writing or editing a review.
type ReviewInput struct {
	PropertyID uint
	Rating     int
	Comment    string
}

// ReviewService manages property reviews and their moderation state. Reviews
// start unapproved and only become publicly visible once an admin approves
// them; editing a review sends it back through moderation.
type ReviewService interface {
	Create(ctx context.Context, userID uint, input ReviewInput) (*model.Review, error)
	ListByProperty(ctx context.Context, propertyID uint) ([]repository.ReviewWithUser, *repository.RatingStats, error)
	ListMine(ctx context.Context, userID uint) ([]model.Review, error)
	Update(ctx context.Context, identity auth.Identity, id uint, input ReviewInput) (*model.Review, error)
	Delete(ctx context.Context, identity auth.Identity, id uint) error
}

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	propertyRepo repository.PropertyRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, propertyRepo repository.PropertyRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, propertyRepo: propertyRepo}
}

// Create submits a review for a property. Each user may review a property
// once; the review awaits admin approval before it is listed.
func (s *reviewService) Create(ctx context.Context, userID uint, input ReviewInput) (*model.Review, error) {
	if input.PropertyID == 0 {
		return nil, apperrors.NewValidation("Property ID is required")
	}
	if !validation.ValidRating(input.Rating) {
		return nil, apperrors.NewValidation("Rating must be between 1 and 5")
	}
	if _, err := s.propertyRepo.FindByID(ctx, input.PropertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Property not found")
		}
		return nil, err
	}

	if _, err := s.reviewRepo.FindByUserAndProperty(ctx, userID, input.PropertyID); err == nil {
		return nil, apperrors.ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &model.Review{
		Rating:     input.Rating,
		Comment:    input.Comment,
		IsApproved: false,
		UserID:     userID,
		PropertyID: input.PropertyID,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByProperty returns a property's approved reviews with rating stats.
func (s *reviewService) ListByProperty(ctx context.Context, propertyID uint) ([]repository.ReviewWithUser, *repository.RatingStats, error) {
	reviews, err := s.reviewRepo.FindApprovedByProperty(ctx, propertyID)
	if err != nil {
		return nil, nil, err
	}
	stats, err := s.reviewRepo.RatingStats(ctx, propertyID)
	if err != nil {
		return nil, nil, err
	}
	return reviews, stats, nil
}

func (s *reviewService) ListMine(ctx context.Context, userID uint) ([]model.Review, error) {
	return s.reviewRepo.FindByUserID(ctx, userID)
}

// Update edits the caller's own review and resets it to unapproved so it goes
// through moderation again. Absent fields keep their stored values, so a
// rating can be changed without resending the comment and vice versa.
func (s *reviewService) Update(ctx context.Context, identity auth.Identity, id uint, input ReviewInput) (*model.Review, error) {
	review, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.UserID != identity.UserID {
		return nil, apperrors.NewForbidden("Unauthorized to update this review")
	}
	if input.Rating != 0 {
		if !validation.ValidRating(input.Rating) {
			return nil, apperrors.NewValidation("Rating must be between 1 and 5")
		}
		review.Rating = input.Rating
	}
	if input.Comment != "" {
		review.Comment = input.Comment
	}
	review.IsApproved = false
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review; the author or an admin may delete it.
func (s *reviewService) Delete(ctx context.Context, identity auth.Identity, id uint) error {
	review, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if review.UserID != identity.UserID && !identity.IsAdmin() {
		return apperrors.NewForbidden("Unauthorized to delete this review")
	}
	return s.reviewRepo.Delete(ctx, id)
}

func (s *reviewService) load(ctx context.Context, id uint) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Review not found")
		}
		return nil, err
	}
	return review, nil
}
