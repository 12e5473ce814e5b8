package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"estately/internal/auth"
	apperrors "estately/internal/errors"
	"estately/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name        string
		input       RegisterInput
		setupMock   func(*MockUserRepository)
		wantErr     string
		wantSuccess bool
	}{
		{
			name: "successful registration",
			input: RegisterInput{
				Name:     "Test User",
				Email:    "test@example.com",
				Password: "Password1",
				Phone:    "9876543210",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			wantSuccess: true,
		},
		{
			name: "missing required fields",
			input: RegisterInput{
				Email:    "test@example.com",
				Password: "Password1",
			},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   "Name, email and password are required",
		},
		{
			name: "invalid email",
			input: RegisterInput{
				Name:     "Test User",
				Email:    "not-an-email",
				Password: "Password1",
			},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   "Invalid email format",
		},
		{
			name: "weak password",
			input: RegisterInput{
				Name:     "Test User",
				Email:    "test@example.com",
				Password: "short",
			},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   "Password must be at least 8 characters long",
		},
		{
			name: "invalid phone",
			input: RegisterInput{
				Name:     "Test User",
				Email:    "test@example.com",
				Password: "Password1",
				Phone:    "12345",
			},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   "Invalid phone number format",
		},
		{
			name: "duplicate email",
			input: RegisterInput{
				Name:     "Test User",
				Email:    "existing@example.com",
				Password: "Password1",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").
					Return(&model.User{Email: "existing@example.com"}, nil)
			},
			wantErr: "User with this email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			user, err := service.Register(context.Background(), tt.input)

			if tt.wantSuccess {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.input.Email, user.Email)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.True(t, user.IsActive)
				assert.NotEqual(t, tt.input.Password, user.Password)
			} else {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				assert.True(t, apperrors.IsValidation(err))
				assert.Nil(t, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password1"), 10)

	tests := []struct {
		name        string
		email       string
		password    string
		setupMock   func(*MockUserRepository)
		expectedErr error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "Password1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:       7,
					Email:    "test@example.com",
					Password: string(hashed),
					Role:     model.RoleUser,
					IsActive: true,
				}, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "Password1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "WrongPass1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					Email:    "test@example.com",
					Password: string(hashed),
					IsActive: true,
				}, nil)
			},
			expectedErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "deactivated account",
			email:    "test@example.com",
			password: "Password1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					Email:    "test@example.com",
					Password: string(hashed),
					IsActive: false,
				}, nil)
			},
			expectedErr: apperrors.ErrAccountDeactivated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password1"), 10)

	t.Run("successful change", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
			ID:       1,
			Password: string(hashed),
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
		err := service.ChangePassword(context.Background(), 1, "Password1", "NewPassword2")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
			ID:       1,
			Password: string(hashed),
		}, nil)

		service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
		err := service.ChangePassword(context.Background(), 1, "Wrong1234", "NewPassword2")

		assert.EqualError(t, err, "Current password is incorrect")
		mockRepo.AssertExpectations(t)
	})

	t.Run("weak new password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
		err := service.ChangePassword(context.Background(), 1, "Password1", "weak")

		assert.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}
