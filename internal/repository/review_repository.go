package repository

import (
	"context"

	"gorm.io/gorm"

	"estately/internal/model"
)

// ReviewWithUser is a review row joined with the author's name.
type ReviewWithUser struct {
	model.Review
	UserName string `json:"user_name" gorm:"column:user_name"`
}

// RatingStats aggregates approved reviews for a property.
type RatingStats struct {
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
}

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id uint) (*model.Review, error)
	FindApprovedByProperty(ctx context.Context, propertyID uint) ([]ReviewWithUser, error)
	FindByUserID(ctx context.Context, userID uint) ([]model.Review, error)
	FindByUserAndProperty(ctx context.Context, userID, propertyID uint) (*model.Review, error)
	ListPending(ctx context.Context) ([]model.Review, error)
	RatingStats(ctx context.Context, propertyID uint) (*RatingStats, error)
	Update(ctx context.Context, review *model.Review) error
	SetApproved(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	CountPending(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// FindApprovedByProperty lists a property's approved reviews with author names.
func (r *reviewRepository) FindApprovedByProperty(ctx context.Context, propertyID uint) ([]ReviewWithUser, error) {
	var rows []ReviewWithUser
	err := r.db.WithContext(ctx).
		Table("review_table").
		Select("review_table.*, user_table.user_name").
		Joins("JOIN user_table ON review_table.user_id = user_table.user_id").
		Where("review_table.property_id = ? AND review_table.is_approved = ?", propertyID, true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByUserAndProperty(ctx context.Context, userID, propertyID uint) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListPending(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).Where("is_approved = ?", false).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// RatingStats returns the count and average rating of approved reviews.
func (r *reviewRepository) RatingStats(ctx context.Context, propertyID uint) (*RatingStats, error) {
	var stats RatingStats
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("COUNT(review_id) AS total_reviews, COALESCE(AVG(rating), 0) AS average_rating").
		Where("property_id = ? AND is_approved = ?", propertyID, true).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) SetApproved(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Review{}).
		Where("review_id = ?", id).
		Update("is_approved", true).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Review{}, id).Error
}

func (r *reviewRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("is_approved = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
