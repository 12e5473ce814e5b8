package model

// Location is a named area properties belong to. Deletion is a soft toggle.
type Location struct {
	ID        uint     `json:"location_id" gorm:"column:location_id;primaryKey"`
	Name      string   `json:"location_name" gorm:"column:location_name;size:100;not null"`
	City      string   `json:"city" gorm:"column:city;size:100;not null"`
	State     string   `json:"state" gorm:"column:state;size:100;not null"`
	Country   string   `json:"country" gorm:"column:country;size:100;not null;default:'India'"`
	ZipCode   *string  `json:"zip_code" gorm:"column:zip_code;size:20"`
	Latitude  *float64 `json:"latitude" gorm:"column:latitude"`
	Longitude *float64 `json:"longitude" gorm:"column:longitude"`
	IsActive  bool     `json:"is_active" gorm:"column:is_active;default:true"`
}

// TableName keeps the original schema name.
func (Location) TableName() string { return "location_table" }
