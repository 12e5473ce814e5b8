package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "estately/internal/errors"
	"estately/internal/model"
	"estately/internal/repository"
)

// CategoryService manages property categories. Reads are public; writes are
// reserved for admins at the routing layer. Deletion is a soft toggle so
// existing properties keep their category.
type CategoryService interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	Update(ctx context.Context, id uint, name string) (*model.Category, error)
	Deactivate(ctx context.Context, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// Create adds a category, rejecting duplicate names.
func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	if name == "" {
		return nil, apperrors.NewValidation("Category name is required")
	}
	if _, err := s.categoryRepo.FindByName(ctx, name); err == nil {
		return nil, apperrors.NewValidation("Category with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &model.Category{Name: name, IsActive: true}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns the active categories.
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.ListActive(ctx)
}

func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	return s.load(ctx, id)
}

func (s *categoryService) Update(ctx context.Context, id uint, name string) (*model.Category, error) {
	if name == "" {
		return nil, apperrors.NewValidation("Category name is required")
	}
	category, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Deactivate soft-deletes a category.
func (s *categoryService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.SetActive(ctx, id, false)
}

func (s *categoryService) load(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Category not found")
		}
		return nil, err
	}
	return category, nil
}
