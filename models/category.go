package models

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex" json:"name"`
	Description string    `json:"description,omitempty"`
	Slug        string    `gorm:"size:100" json:"slug,omitempty"`
	ParentID    *uint     `gorm:"index" json:"parent_id,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProductCategory is the join row between products and categories.
// The composite primary key keeps a pair from appearing twice.
type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey" json:"product_id"`
	CategoryID uint `gorm:"primaryKey" json:"category_id"`
}
