package models

import "time"

// ContentSection is an editable block of the public pages (hero, about...).
type ContentSection struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SectionName string    `gorm:"size:100;not null;uniqueIndex" json:"section_name"`
	Title       string    `gorm:"size:255" json:"title"`
	Subtitle    string    `gorm:"size:255" json:"subtitle"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"column:image_url;size:500" json:"image_url"`
	ButtonText  string    `gorm:"size:100" json:"button_text"`
	ButtonURL   string    `gorm:"column:button_url;size:500" json:"button_url"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceFeature is one of the "why choose us" cards on the home page.
type ServiceFeature struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:100" json:"icon"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
