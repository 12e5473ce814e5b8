package model

// Category classifies properties. Deletion is a soft toggle of IsActive.
type Category struct {
	ID       uint   `json:"category_id" gorm:"column:category_id;primaryKey"`
	Name     string `json:"category_name" gorm:"column:category_name;size:100;uniqueIndex;not null"`
	IsActive bool   `json:"is_active" gorm:"column:is_active;default:true"`
}

// TableName keeps the original schema name.
func (Category) TableName() string { return "category_table" }
