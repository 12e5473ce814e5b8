package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"estately/internal/model"
)

// PropertyListing is a property row joined with the names of its related
// records for presentation.
type PropertyListing struct {
	model.Property
	UserName     string `json:"user_name" gorm:"column:user_name"`
	CategoryName string `json:"category_name" gorm:"column:category_name"`
	LocationName string `json:"location_name" gorm:"column:location_name"`
	City         string `json:"city" gorm:"column:city"`
}

// PropertyDetails is a property joined with category and location names.
type PropertyDetails struct {
	model.Property
	CategoryName string `json:"category_name" gorm:"column:category_name"`
	LocationName string `json:"location_name" gorm:"column:location_name"`
	City         string `json:"city" gorm:"column:city"`
}

// PropertyFilters are conjunctive search criteria; zero values mean the
// criterion is omitted, not defaulted.
type PropertyFilters struct {
	Type         string
	CategoryID   uint
	LocationID   uint
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	MinBedrooms  *int
	MinBathrooms *int
	MinArea      *float64
	SearchTerm   string
}

// PropertyRepository defines property persistence operations.
type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	FindByID(ctx context.Context, id uint) (*model.Property, error)
	FindDetails(ctx context.Context, id uint) (*PropertyDetails, error)
	ListApproved(ctx context.Context) ([]PropertyListing, error)
	FindByUserID(ctx context.Context, userID uint) ([]model.Property, error)
	FindByCategoryID(ctx context.Context, categoryID uint) ([]model.Property, error)
	FindByLocationID(ctx context.Context, locationID uint) ([]model.Property, error)
	FindByType(ctx context.Context, propertyType string) ([]model.Property, error)
	ListFeatured(ctx context.Context) ([]model.Property, error)
	Search(ctx context.Context, filters PropertyFilters) ([]model.Property, error)
	Update(ctx context.Context, property *model.Property) error
	Delete(ctx context.Context, id uint) error
	SetApproved(ctx context.Context, id uint) error
	SetFeatured(ctx context.Context, id uint) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	ListPendingApproval(ctx context.Context) ([]model.Property, error)
	ListByStatus(ctx context.Context, status string) ([]PropertyListing, error)
	CountApproved(ctx context.Context) (int64, error)
	CountPendingApproval(ctx context.Context) (int64, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*model.Property, error) {
	var property model.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) FindDetails(ctx context.Context, id uint) (*PropertyDetails, error) {
	var details PropertyDetails
	err := r.db.WithContext(ctx).
		Table("property_table").
		Select("property_table.*, category_table.category_name, location_table.location_name, location_table.city").
		Joins("JOIN category_table ON property_table.category_id = category_table.category_id").
		Joins("JOIN location_table ON property_table.location_id = location_table.location_id").
		Where("property_table.property_id = ?", id).
		First(&details).Error
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *propertyRepository) listingQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("property_table").
		Select("property_table.*, user_table.user_name, category_table.category_name, location_table.location_name, location_table.city").
		Joins("JOIN user_table ON property_table.user_id = user_table.user_id").
		Joins("JOIN category_table ON property_table.category_id = category_table.category_id").
		Joins("JOIN location_table ON property_table.location_id = location_table.location_id")
}

func (r *propertyRepository) ListApproved(ctx context.Context) ([]PropertyListing, error) {
	var listings []PropertyListing
	err := r.listingQuery(ctx).
		Where("property_table.is_approved = ?", true).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *propertyRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Property, error) {
	var properties []model.Property
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) FindByCategoryID(ctx context.Context, categoryID uint) ([]model.Property, error) {
	var properties []model.Property
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND is_approved = ?", categoryID, true).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) FindByLocationID(ctx context.Context, locationID uint) ([]model.Property, error) {
	var properties []model.Property
	err := r.db.WithContext(ctx).
		Where("location_id = ? AND is_approved = ?", locationID, true).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) FindByType(ctx context.Context, propertyType string) ([]model.Property, error) {
	var properties []model.Property
	err := r.db.WithContext(ctx).
		Where("property_type = ? AND is_approved = ?", propertyType, true).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) ListFeatured(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	err := r.db.WithContext(ctx).
		Where("is_featured = ? AND is_approved = ? AND property_status = ?",
			true, true, model.PropertyStatusAvailable).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// Search applies the supplied filters conjunctively over approved properties.
func (r *propertyRepository) Search(ctx context.Context, filters PropertyFilters) ([]model.Property, error) {
	query := r.db.WithContext(ctx).Where("is_approved = ?", true)

	if filters.Type != "" {
		query = query.Where("property_type = ?", filters.Type)
	}
	if filters.CategoryID != 0 {
		query = query.Where("category_id = ?", filters.CategoryID)
	}
	if filters.LocationID != 0 {
		query = query.Where("location_id = ?", filters.LocationID)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", filters.MaxPrice)
	}
	if filters.MinBedrooms != nil {
		query = query.Where("bedrooms >= ?", *filters.MinBedrooms)
	}
	if filters.MinBathrooms != nil {
		query = query.Where("bathrooms >= ?", *filters.MinBathrooms)
	}
	if filters.MinArea != nil {
		query = query.Where("area_sqft >= ?", *filters.MinArea)
	}
	if filters.SearchTerm != "" {
		term := "%" + filters.SearchTerm + "%"
		query = query.Where(
			"LOWER(property_title) LIKE LOWER(?) OR LOWER(property_description) LIKE LOWER(?) OR LOWER(address) LIKE LOWER(?)",
			term, term, term)
	}

	var properties []model.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Update persists the full property record.
func (r *propertyRepository) Update(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *propertyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Property{}, id).Error
}

func (r *propertyRepository) SetApproved(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Property{}).
		Where("property_id = ?", id).
		Update("is_approved", true).Error
}

func (r *propertyRepository) SetFeatured(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Property{}).
		Where("property_id = ?", id).
		Update("is_featured", true).Error
}

func (r *propertyRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Property{}).
		Where("property_id = ?", id).
		Update("property_status", status).Error
}

func (r *propertyRepository) ListPendingApproval(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	if err := r.db.WithContext(ctx).Where("is_approved = ?", false).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) ListByStatus(ctx context.Context, status string) ([]PropertyListing, error) {
	var listings []PropertyListing
	err := r.listingQuery(ctx).
		Where("property_table.property_status = ?", status).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *propertyRepository) CountApproved(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Property{}).
		Where("is_approved = ?", true).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *propertyRepository) CountPendingApproval(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Property{}).
		Where("is_approved = ?", false).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
