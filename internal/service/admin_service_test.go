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

func newAdminServiceForTest() (AdminService, *MockUserRepository, *MockPropertyRepository, *MockReviewRepository, *MockDenyList) {
	userRepo := new(MockUserRepository)
	propertyRepo := new(MockPropertyRepository)
	reviewRepo := new(MockReviewRepository)
	denyList := new(MockDenyList)
	return NewAdminService(userRepo, propertyRepo, reviewRepo, denyList), userRepo, propertyRepo, reviewRepo, denyList
}

func TestAdminService_Dashboard(t *testing.T) {
	service, userRepo, propertyRepo, reviewRepo, _ := newAdminServiceForTest()
	userRepo.On("Count", mock.Anything).Return(int64(12), nil)
	propertyRepo.On("CountApproved", mock.Anything).Return(int64(8), nil)
	propertyRepo.On("CountPendingApproval", mock.Anything).Return(int64(2), nil)
	reviewRepo.On("CountPending", mock.Anything).Return(int64(3), nil)

	stats, err := service.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(8), stats.TotalProperties)
	assert.Equal(t, int64(2), stats.PendingProperties)
	assert.Equal(t, int64(3), stats.PendingReviews)
}

func TestAdminService_ApproveProperty(t *testing.T) {
	t.Run("approves existing property", func(t *testing.T) {
		service, _, propertyRepo, _, _ := newAdminServiceForTest()
		propertyRepo.On("FindByID", mock.Anything, uint(4)).Return(&model.Property{ID: 4}, nil)
		propertyRepo.On("SetApproved", mock.Anything, uint(4)).Return(nil)

		err := service.ApproveProperty(context.Background(), 4)
		assert.NoError(t, err)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("unknown property", func(t *testing.T) {
		service, _, propertyRepo, _, _ := newAdminServiceForTest()
		propertyRepo.On("FindByID", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

		err := service.ApproveProperty(context.Background(), 4)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestAdminService_DeactivateUser(t *testing.T) {
	t.Run("deactivation records deny-list entry", func(t *testing.T) {
		service, userRepo, _, _, denyList := newAdminServiceForTest()
		userRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Role: model.RoleUser}, nil)
		userRepo.On("SetActive", mock.Anything, uint(7), false).Return(nil)
		denyList.On("Deny", mock.Anything, uint(7)).Return(nil)

		err := service.DeactivateUser(context.Background(), 7)
		assert.NoError(t, err)
		denyList.AssertExpectations(t)
	})

	t.Run("admin accounts cannot be deactivated", func(t *testing.T) {
		service, userRepo, _, _, _ := newAdminServiceForTest()
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Role: model.RoleAdmin}, nil)

		err := service.DeactivateUser(context.Background(), 1)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestAdminService_ActivateUser(t *testing.T) {
	service, userRepo, _, _, denyList := newAdminServiceForTest()
	userRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, IsActive: false}, nil)
	userRepo.On("SetActive", mock.Anything, uint(7), true).Return(nil)
	denyList.On("Allow", mock.Anything, uint(7)).Return(nil)

	err := service.ActivateUser(context.Background(), 7)
	assert.NoError(t, err)
	denyList.AssertExpectations(t)
}

func TestAdminService_ApproveReview(t *testing.T) {
	service, _, _, reviewRepo, _ := newAdminServiceForTest()
	reviewRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.Review{ID: 2}, nil)
	reviewRepo.On("SetApproved", mock.Anything, uint(2)).Return(nil)

	err := service.ApproveReview(context.Background(), 2)
	assert.NoError(t, err)
	reviewRepo.AssertExpectations(t)
}
