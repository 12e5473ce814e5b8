package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"estately/internal/auth"
	apperrors "estately/internal/errors"
	"estately/internal/model"
	"estately/internal/repository"
	"estately/internal/validation"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	Address        string
	ProfilePicture *string
}

// AuthService handles registration, login and password changes.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{userRepo: userRepo, jwtService: jwtService}
}

// Register creates a regular user account with a hashed password.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, apperrors.NewValidation("Name, email and password are required")
	}
	if !validation.ValidEmail(input.Email) {
		return nil, apperrors.NewValidation("Invalid email format")
	}
	if ok, reason := validation.ValidPassword(input.Password); !ok {
		return nil, apperrors.NewValidation(reason)
	}
	if input.Phone != "" && !validation.ValidPhone(input.Phone) {
		return nil, apperrors.NewValidation("Invalid phone number format")
	}

	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.NewValidation("User with this email already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	digest, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:           input.Name,
		Email:          input.Email,
		Password:       digest,
		Phone:          input.Phone,
		Address:        input.Address,
		Role:           model.RoleUser,
		ProfilePicture: input.ProfilePicture,
		IsActive:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates an account and returns a session token. Deactivated
// accounts cannot authenticate.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, apperrors.ErrAccountDeactivated
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// ChangePassword verifies the current password before storing a new digest.
func (s *authService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if ok, reason := validation.ValidPassword(newPassword); !ok {
		return apperrors.NewValidation(reason)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return apperrors.NewNotFound("User not found")
	}
	if !auth.CheckPassword(user.Password, currentPassword) {
		return apperrors.NewValidation("Current password is incorrect")
	}

	digest, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = digest
	return s.userRepo.Update(ctx, user)
}
