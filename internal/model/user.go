package model

import "time"

// Role values for User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account, regular or admin.
type User struct {
	ID             uint      `json:"user_id" gorm:"column:user_id;primaryKey"`
	Name           string    `json:"user_name" gorm:"column:user_name;size:100;not null"`
	Email          string    `json:"user_email" gorm:"column:user_email;size:255;uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"column:user_password;size:255;not null"`
	Phone          string    `json:"user_phone" gorm:"column:user_phone;size:20"`
	Address        string    `json:"user_address" gorm:"column:user_address;type:text"`
	Role           string    `json:"user_role" gorm:"column:user_role;type:varchar(10);default:'user';index"`
	ProfilePicture *string   `json:"user_profile_picture" gorm:"column:user_profile_picture;size:255"`
	IsVerified     bool      `json:"is_verified" gorm:"column:is_verified;default:false"`
	IsActive       bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedDate    time.Time `json:"created_date" gorm:"column:created_date;autoCreateTime"`
	UpdatedDate    time.Time `json:"updated_date" gorm:"column:updated_date;autoCreateTime;autoUpdateTime"`
}

// TableName keeps the original schema name.
func (User) TableName() string { return "user_table" }
