package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "estately/internal/errors"
	"estately/internal/model"
	"estately/internal/repository"
)

// LocationInput carries the fields accepted when creating or editing a location.
type LocationInput struct {
	Name      string
	City      string
	State     string
	Country   string
	ZipCode   *string
	Latitude  *float64
	Longitude *float64
}

// LocationService manages listing locations. Reads are public; writes are
// reserved for admins at the routing layer.
type LocationService interface {
	Create(ctx context.Context, input LocationInput) (*model.Location, error)
	List(ctx context.Context) ([]model.Location, error)
	Get(ctx context.Context, id uint) (*model.Location, error)
	ByCity(ctx context.Context, city string) ([]model.Location, error)
	Search(ctx context.Context, term string) ([]model.Location, error)
	Update(ctx context.Context, id uint, input LocationInput) (*model.Location, error)
	Deactivate(ctx context.Context, id uint) error
}

type locationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new location service.
func NewLocationService(locationRepo repository.LocationRepository) LocationService {
	return &locationService{locationRepo: locationRepo}
}

func (s *locationService) Create(ctx context.Context, input LocationInput) (*model.Location, error) {
	if input.Name == "" || input.City == "" || input.State == "" {
		return nil, apperrors.NewValidation("Location name, city and state are required")
	}
	location := &model.Location{
		Name:      input.Name,
		City:      input.City,
		State:     input.State,
		Country:   input.Country,
		ZipCode:   input.ZipCode,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		IsActive:  true,
	}
	if location.Country == "" {
		location.Country = "India"
	}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// List returns the active locations.
func (s *locationService) List(ctx context.Context) ([]model.Location, error) {
	return s.locationRepo.ListActive(ctx)
}

func (s *locationService) Get(ctx context.Context, id uint) (*model.Location, error) {
	return s.load(ctx, id)
}

func (s *locationService) ByCity(ctx context.Context, city string) ([]model.Location, error) {
	return s.locationRepo.FindByCity(ctx, city)
}

func (s *locationService) Search(ctx context.Context, term string) ([]model.Location, error) {
	if term == "" {
		return nil, apperrors.NewValidation("Search term is required")
	}
	return s.locationRepo.Search(ctx, term)
}

func (s *locationService) Update(ctx context.Context, id uint, input LocationInput) (*model.Location, error) {
	location, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		location.Name = input.Name
	}
	if input.City != "" {
		location.City = input.City
	}
	if input.State != "" {
		location.State = input.State
	}
	if input.Country != "" {
		location.Country = input.Country
	}
	if input.ZipCode != nil {
		location.ZipCode = input.ZipCode
	}
	if input.Latitude != nil {
		location.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		location.Longitude = input.Longitude
	}
	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// Deactivate soft-deletes a location.
func (s *locationService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.locationRepo.SetActive(ctx, id, false)
}

func (s *locationService) load(ctx context.Context, id uint) (*model.Location, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Location not found")
		}
		return nil, err
	}
	return location, nil
}
