package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index" json:"product_id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
