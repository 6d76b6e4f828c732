package models

import "time"

type Article struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:longtext" json:"content"`
	Excerpt   string    `gorm:"type:text" json:"excerpt"`
	Image     string    `gorm:"size:500" json:"image"`
	Category  string    `gorm:"size:100" json:"category"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
