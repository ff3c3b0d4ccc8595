package models

import "time"

type Product struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Stock          int               `json:"stock"`
	Images         []string          `gorm:"type:text;serializer:json" json:"images"`
	SKU            string            `gorm:"size:100;uniqueIndex" json:"sku"`
	Brand          string            `json:"brand,omitempty"`
	Tags           []string          `gorm:"type:text;serializer:json" json:"tags"`
	OriginalPrice  *float64          `json:"original_price,omitempty"`
	InStock        bool              `json:"in_stock"`
	Features       []string          `gorm:"type:text;serializer:json" json:"features"`
	Specifications map[string]string `gorm:"type:text;serializer:json" json:"specifications"`
	Shipping       map[string]string `gorm:"type:text;serializer:json" json:"shipping"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	Categories     []Category        `gorm:"many2many:product_categories" json:"categories"`
}
