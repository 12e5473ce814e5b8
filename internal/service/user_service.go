package service

import (
	"context"

	apperrors "estately/internal/errors"
	"estately/internal/model"
	"estately/internal/repository"
	"estately/internal/validation"
)

// ProfileUpdate carries optional profile fields; nil means leave unchanged.
type ProfileUpdate struct {
	Name                 *string
	Phone                *string
	Address              *string
	ProfilePicture       *string
	RemoveProfilePicture bool
}

// UserService exposes profile operations and user listings.
type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*model.User, error)
	ListRegularUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewNotFound("User not found")
	}
	return user, nil
}

// UpdateProfile applies the supplied fields onto the stored record. The
// caller is responsible for deleting any replaced picture file.
func (s *userService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewNotFound("User not found")
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		if !validation.ValidPhone(*update.Phone) {
			return nil, apperrors.NewValidation("Invalid phone number format")
		}
		user.Phone = *update.Phone
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.RemoveProfilePicture {
		user.ProfilePicture = nil
	}
	if update.ProfilePicture != nil {
		user.ProfilePicture = update.ProfilePicture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListRegularUsers returns accounts with the user role, excluding admins.
func (s *userService) ListRegularUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.FindByRole(ctx, model.RoleUser)
}
