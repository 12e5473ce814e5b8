package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"estately/internal/auth"
	apperrors "estately/internal/errors"
	"estately/internal/model"
	"estately/internal/repository"
	"estately/internal/validation"
)

// propertyTransitions lists the legal status moves. Sold is terminal; the
// rented value exists in the schema but nothing transitions into it.
var propertyTransitions = map[string][]string{
	model.PropertyStatusAvailable: {model.PropertyStatusPending, model.PropertyStatusSold},
	model.PropertyStatusPending:   {model.PropertyStatusSold, model.PropertyStatusAvailable},
}

// PropertyInput carries the fields accepted when creating or updating a
// property listing.
type PropertyInput struct {
	Title        string
	Description  string
	Type         string
	Price        decimal.Decimal
	Bedrooms     int
	Bathrooms    int
	AreaSqft     float64
	Address      string
	YearBuilt    *int
	ParkingSpots int
	HasGarden    bool
	HasPool      bool
	PetFriendly  bool
	Furnished    bool
	Images       []string
	CategoryID   uint
	LocationID   uint
}

// PropertyService encodes the property lifecycle: creation with the admin
// approval gate, ownership-checked mutation and the status state machine.
type PropertyService interface {
	Create(ctx context.Context, identity auth.Identity, input PropertyInput) (*model.Property, error)
	ListApproved(ctx context.Context) ([]repository.PropertyListing, error)
	GetDetails(ctx context.Context, id uint) (*repository.PropertyDetails, error)
	ListByOwner(ctx context.Context, userID uint) ([]model.Property, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]model.Property, error)
	ListByLocation(ctx context.Context, locationID uint) ([]model.Property, error)
	ListByType(ctx context.Context, propertyType string) ([]model.Property, error)
	ListFeatured(ctx context.Context) ([]model.Property, error)
	Search(ctx context.Context, filters repository.PropertyFilters) ([]model.Property, error)
	Update(ctx context.Context, identity auth.Identity, id uint, input PropertyInput) (*model.Property, error)
	Delete(ctx context.Context, identity auth.Identity, id uint) (*model.Property, error)
	ChangeStatus(ctx context.Context, identity auth.Identity, id uint, status string) (*model.Property, error)
	ListByStatus(ctx context.Context, status string) ([]repository.PropertyListing, error)
}

type propertyService struct {
	propertyRepo repository.PropertyRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
}

// NewPropertyService creates a new property service.
func NewPropertyService(
	propertyRepo repository.PropertyRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

func (s *propertyService) validateInput(ctx context.Context, input PropertyInput) error {
	if input.Title == "" || input.Description == "" || input.Address == "" {
		return apperrors.NewValidation("Title, description and address are required")
	}
	if input.Type != model.PropertyTypeSale && input.Type != model.PropertyTypeRent {
		return apperrors.NewValidation("Property type must be sale or rent")
	}
	if !validation.ValidPrice(input.Price) {
		return apperrors.NewValidation("Price must be positive")
	}
	if !validation.ValidBedrooms(input.Bedrooms) {
		return apperrors.NewValidation("Invalid bedrooms count")
	}
	if !validation.ValidBathrooms(input.Bathrooms) {
		return apperrors.NewValidation("Invalid bathrooms count")
	}
	if input.ParkingSpots < 0 {
		return apperrors.NewValidation("Invalid parking spots count")
	}
	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidation("Category does not exist")
		}
		return err
	}
	if _, err := s.locationRepo.FindByID(ctx, input.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidation("Location does not exist")
		}
		return err
	}
	return nil
}

// Create stores a new listing. Admin-created properties are approved
// immediately; everything else waits for moderation.
func (s *propertyService) Create(ctx context.Context, identity auth.Identity, input PropertyInput) (*model.Property, error) {
	if len(input.Images) == 0 {
		return nil, apperrors.NewValidation("At least one valid image is required")
	}
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	property := &model.Property{
		Title:        input.Title,
		Description:  input.Description,
		Type:         input.Type,
		Price:        input.Price,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		AreaSqft:     input.AreaSqft,
		Address:      input.Address,
		YearBuilt:    input.YearBuilt,
		ParkingSpots: input.ParkingSpots,
		HasGarden:    input.HasGarden,
		HasPool:      input.HasPool,
		PetFriendly:  input.PetFriendly,
		Furnished:    input.Furnished,
		Images:       input.Images,
		Status:       model.PropertyStatusAvailable,
		IsApproved:   identity.IsAdmin(),
		UserID:       identity.UserID,
		CategoryID:   input.CategoryID,
		LocationID:   input.LocationID,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) ListApproved(ctx context.Context) ([]repository.PropertyListing, error) {
	return s.propertyRepo.ListApproved(ctx)
}

func (s *propertyService) GetDetails(ctx context.Context, id uint) (*repository.PropertyDetails, error) {
	details, err := s.propertyRepo.FindDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Property not found")
		}
		return nil, err
	}
	return details, nil
}

func (s *propertyService) ListByOwner(ctx context.Context, userID uint) ([]model.Property, error) {
	return s.propertyRepo.FindByUserID(ctx, userID)
}

func (s *propertyService) ListByCategory(ctx context.Context, categoryID uint) ([]model.Property, error) {
	return s.propertyRepo.FindByCategoryID(ctx, categoryID)
}

func (s *propertyService) ListByLocation(ctx context.Context, locationID uint) ([]model.Property, error) {
	return s.propertyRepo.FindByLocationID(ctx, locationID)
}

func (s *propertyService) ListByType(ctx context.Context, propertyType string) ([]model.Property, error) {
	if propertyType != model.PropertyTypeSale && propertyType != model.PropertyTypeRent {
		return nil, apperrors.NewValidation("Property type must be sale or rent")
	}
	return s.propertyRepo.FindByType(ctx, propertyType)
}

func (s *propertyService) ListFeatured(ctx context.Context) ([]model.Property, error) {
	return s.propertyRepo.ListFeatured(ctx)
}

func (s *propertyService) Search(ctx context.Context, filters repository.PropertyFilters) ([]model.Property, error) {
	return s.propertyRepo.Search(ctx, filters)
}

func (s *propertyService) loadOwned(ctx context.Context, identity auth.Identity, id uint) (*model.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Property not found")
		}
		return nil, err
	}
	if property.UserID != identity.UserID && !identity.IsAdmin() {
		return nil, apperrors.NewForbidden("Unauthorized to modify this property")
	}
	return property, nil
}

// Update replaces the stored listing's fields with the supplied values. Only
// the owner or an admin may update, and edits never change approval state.
func (s *propertyService) Update(ctx context.Context, identity auth.Identity, id uint, input PropertyInput) (*model.Property, error) {
	property, err := s.loadOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	property.Title = input.Title
	property.Description = input.Description
	property.Type = input.Type
	property.Price = input.Price
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.AreaSqft = input.AreaSqft
	property.Address = input.Address
	property.YearBuilt = input.YearBuilt
	property.ParkingSpots = input.ParkingSpots
	property.HasGarden = input.HasGarden
	property.HasPool = input.HasPool
	property.PetFriendly = input.PetFriendly
	property.Furnished = input.Furnished
	if len(input.Images) > 0 {
		property.Images = input.Images
	}
	property.CategoryID = input.CategoryID
	property.LocationID = input.LocationID

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Delete removes a listing. The deleted record is returned so callers can
// clean up its image files.
func (s *propertyService) Delete(ctx context.Context, identity auth.Identity, id uint) (*model.Property, error) {
	property, err := s.loadOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return property, nil
}

// ChangeStatus moves a property through its status machine. Only the owner
// or an admin may transition, and only along a legal edge.
func (s *propertyService) ChangeStatus(ctx context.Context, identity auth.Identity, id uint, status string) (*model.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Property not found")
		}
		return nil, err
	}
	if property.UserID != identity.UserID && !identity.IsAdmin() {
		return nil, apperrors.NewForbidden("Unauthorized to update this property")
	}

	if !transitionAllowed(property.Status, status) {
		return nil, apperrors.NewInvalidTransition(
			"Cannot change property status from " + property.Status + " to " + status)
	}

	if err := s.propertyRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	property.Status = status
	return property, nil
}

func (s *propertyService) ListByStatus(ctx context.Context, status string) ([]repository.PropertyListing, error) {
	return s.propertyRepo.ListByStatus(ctx, status)
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range propertyTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
