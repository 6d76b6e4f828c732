package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomRequest is a free-form booking: Services holds the comma separated
// names the customer picked, priced again on every read.
type CustomRequest struct {
	ID                 uint                `gorm:"primaryKey" json:"id"`
	Name               string              `gorm:"size:255;not null" json:"name"`
	Email              string              `gorm:"size:255;not null" json:"email"`
	Phone              string              `gorm:"size:50;not null" json:"phone"`
	WeddingDate        time.Time           `gorm:"type:date;not null" json:"wedding_date"`
	BookingAmount      decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"booking_amount"`
	Services           string              `gorm:"type:text" json:"services"`
	AdditionalRequests string              `gorm:"type:text" json:"additional_requests"`
	Status             string              `gorm:"size:32;not null;default:pending;index" json:"status"`
	CreatedAt          time.Time           `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}
