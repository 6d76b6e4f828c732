package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	Phone       string    `gorm:"size:50;not null" json:"phone"`
	Address     string    `gorm:"type:text" json:"address"`
	WeddingDate time.Time `gorm:"type:date;not null" json:"wedding_date"`
	Notes       string    `gorm:"type:text" json:"notes"`

	// service_name is copied at submission so renamed or deleted services
	// still read back on old orders.
	ServiceID   *uint  `gorm:"index" json:"service_id"`
	ServiceName string `gorm:"size:255" json:"service_name"`

	SelectedItems datatypes.JSON      `gorm:"type:json" json:"selected_items"`
	TotalAmount   decimal.Decimal     `gorm:"type:decimal(15,2);not null;default:0" json:"total_amount"`
	BookingAmount decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"booking_amount"`
	Status        string              `gorm:"size:32;not null;default:pending;index" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
