package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyType values for Property.Type.
const (
	PropertyTypeSale = "sale"
	PropertyTypeRent = "rent"
)

// PropertyStatus values for Property.Status.
const (
	PropertyStatusAvailable = "available"
	PropertyStatusSold      = "sold"
	PropertyStatusRented    = "rented"
	PropertyStatusPending   = "pending"
)

// Property represents a listed property. It is visible in public listings
// only once an admin has approved it.
type Property struct {
	ID           uint            `json:"property_id" gorm:"column:property_id;primaryKey"`
	Title        string          `json:"property_title" gorm:"column:property_title;size:255;not null"`
	Description  string          `json:"property_description" gorm:"column:property_description;type:text;not null"`
	Type         string          `json:"property_type" gorm:"column:property_type;type:varchar(10);not null"`
	Price        decimal.Decimal `json:"price" gorm:"column:price;type:decimal(12,2);not null"`
	Bedrooms     int             `json:"bedrooms" gorm:"column:bedrooms;not null"`
	Bathrooms    int             `json:"bathrooms" gorm:"column:bathrooms;not null"`
	AreaSqft     float64         `json:"area_sqft" gorm:"column:area_sqft;not null"`
	Address      string          `json:"address" gorm:"column:address;type:text;not null"`
	YearBuilt    *int            `json:"year_built" gorm:"column:year_built"`
	ParkingSpots int             `json:"parking_spots" gorm:"column:parking_spots;default:0"`
	HasGarden    bool            `json:"has_garden" gorm:"column:has_garden;default:false"`
	HasPool      bool            `json:"has_pool" gorm:"column:has_pool;default:false"`
	PetFriendly  bool            `json:"pet_friendly" gorm:"column:pet_friendly;default:false"`
	Furnished    bool            `json:"furnished" gorm:"column:furnished;default:false"`
	Images       []string        `json:"property_images" gorm:"column:property_images;serializer:json"`
	Status       string          `json:"property_status" gorm:"column:property_status;type:varchar(10);default:'available';index"`
	IsFeatured   bool            `json:"is_featured" gorm:"column:is_featured;default:false"`
	IsApproved   bool            `json:"is_approved" gorm:"column:is_approved;default:false;index"`
	CreatedDate  time.Time       `json:"created_date" gorm:"column:created_date;autoCreateTime"`
	UpdatedDate  time.Time       `json:"updated_date" gorm:"column:updated_date;autoCreateTime;autoUpdateTime"`

	UserID     uint `json:"user_id" gorm:"column:user_id;not null;index"`
	CategoryID uint `json:"category_id" gorm:"column:category_id;not null;index"`
	LocationID uint `json:"location_id" gorm:"column:location_id;not null;index"`
}

// TableName keeps the original schema name.
func (Property) TableName() string { return "property_table" }
