package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable wedding package shown on the storefront.
type Service struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"base_price"`
	Image       string          `gorm:"size:255" json:"image"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
