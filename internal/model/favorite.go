package model

import "time"

// Favorite marks a property saved by a user. A user favorites a property at
// most once; the unique index backstops the application-level check.
type Favorite struct {
	ID          uint      `json:"favorite_id" gorm:"column:favorite_id;primaryKey"`
	CreatedDate time.Time `json:"created_date" gorm:"column:created_date;autoCreateTime"`

	UserID     uint `json:"user_id" gorm:"column:user_id;not null;uniqueIndex:uniq_user_property_favorite"`
	PropertyID uint `json:"property_id" gorm:"column:property_id;not null;uniqueIndex:uniq_user_property_favorite"`
}

// TableName keeps the original schema name.
func (Favorite) TableName() string { return "favorite_table" }
