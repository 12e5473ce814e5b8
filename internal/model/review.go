package model

import "time"

// Review is a 1-5 star rating with optional comment. One review per user per
// property; new and edited reviews await admin approval.
type Review struct {
	ID          uint      `json:"review_id" gorm:"column:review_id;primaryKey"`
	Rating      int       `json:"rating" gorm:"column:rating;not null"`
	Comment     string    `json:"comment" gorm:"column:comment;type:text"`
	IsApproved  bool      `json:"is_approved" gorm:"column:is_approved;default:false"`
	CreatedDate time.Time `json:"created_date" gorm:"column:created_date;autoCreateTime"`

	UserID     uint `json:"user_id" gorm:"column:user_id;not null;uniqueIndex:uniq_user_property_review"`
	PropertyID uint `json:"property_id" gorm:"column:property_id;not null;uniqueIndex:uniq_user_property_review"`
}

// TableName keeps the original schema name.
func (Review) TableName() string { return "review_table" }
