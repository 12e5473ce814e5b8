package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"estately/internal/auth"
	apperrors "estately/internal/errors"
	"estately/internal/model"
	"estately/internal/repository"
)

// DashboardStats summarizes the marketplace state for the admin dashboard.
type DashboardStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalProperties   int64 `json:"total_properties"`
	PendingProperties int64 `json:"pending_properties"`
	PendingReviews    int64 `json:"pending_reviews"`
}

// AdminService covers the moderation surface: dashboard counts, approval
// queues, and user account controls. The routing layer restricts it to
// admin identities.
type AdminService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	PendingProperties(ctx context.Context) ([]model.Property, error)
	ApproveProperty(ctx context.Context, id uint) error
	FeatureProperty(ctx context.Context, id uint) error
	PendingReviews(ctx context.Context) ([]model.Review, error)
	ApproveReview(ctx context.Context, id uint) error
	VerifyUser(ctx context.Context, id uint) error
	ActivateUser(ctx context.Context, id uint) error
	DeactivateUser(ctx context.Context, id uint) error
}

type adminService struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	reviewRepo   repository.ReviewRepository
	denyList     auth.DenyListInterface
}

// NewAdminService creates a new admin service.
func NewAdminService(
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
	reviewRepo repository.ReviewRepository,
	denyList auth.DenyListInterface,
) AdminService {
	return &adminService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		reviewRepo:   reviewRepo,
		denyList:     denyList,
	}
}

func (s *adminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	properties, err := s.propertyRepo.CountApproved(ctx)
	if err != nil {
		return nil, err
	}
	pendingProperties, err := s.propertyRepo.CountPendingApproval(ctx)
	if err != nil {
		return nil, err
	}
	pendingReviews, err := s.reviewRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalUsers:        users,
		TotalProperties:   properties,
		PendingProperties: pendingProperties,
		PendingReviews:    pendingReviews,
	}, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *adminService) PendingProperties(ctx context.Context) ([]model.Property, error) {
	return s.propertyRepo.ListPendingApproval(ctx)
}

// ApproveProperty makes a listing publicly visible.
func (s *adminService) ApproveProperty(ctx context.Context, id uint) error {
	if _, err := s.propertyRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Property not found")
		}
		return err
	}
	return s.propertyRepo.SetApproved(ctx, id)
}

// FeatureProperty marks a listing for the featured carousel.
func (s *adminService) FeatureProperty(ctx context.Context, id uint) error {
	if _, err := s.propertyRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Property not found")
		}
		return err
	}
	return s.propertyRepo.SetFeatured(ctx, id)
}

func (s *adminService) PendingReviews(ctx context.Context) ([]model.Review, error) {
	return s.reviewRepo.ListPending(ctx)
}

func (s *adminService) ApproveReview(ctx context.Context, id uint) error {
	if _, err := s.reviewRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Review not found")
		}
		return err
	}
	return s.reviewRepo.SetApproved(ctx, id)
}

func (s *adminService) VerifyUser(ctx context.Context, id uint) error {
	if _, err := s.loadUser(ctx, id); err != nil {
		return err
	}
	return s.userRepo.SetVerified(ctx, id, true)
}

// ActivateUser re-enables a deactivated account and clears it from the
// token deny list so outstanding tokens work again.
func (s *adminService) ActivateUser(ctx context.Context, id uint) error {
	if _, err := s.loadUser(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.SetActive(ctx, id, true); err != nil {
		return err
	}
	return s.denyList.Allow(ctx, id)
}

// DeactivateUser disables an account and puts it on the token deny list so
// tokens issued before deactivation stop working immediately.
func (s *adminService) DeactivateUser(ctx context.Context, id uint) error {
	user, err := s.loadUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == model.RoleAdmin {
		return apperrors.NewForbidden("Cannot deactivate an admin account")
	}
	if err := s.userRepo.SetActive(ctx, id, false); err != nil {
		return err
	}
	return s.denyList.Deny(ctx, id)
}

func (s *adminService) loadUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
