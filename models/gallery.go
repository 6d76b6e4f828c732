package models

import "time"

type GalleryCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GalleryImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"column:image_url;size:500;not null" json:"image_url"`
	CategoryID  *uint     `gorm:"index" json:"category_id"`
	IsFeatured  bool      `gorm:"not null" json:"is_featured"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Category *GalleryCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

// GalleryImageView is an image row joined with its category name.
type GalleryImageView struct {
	GalleryImage
	CategoryName *string `json:"category_name"`
}
