package models

import "time"

type PaymentMethod struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Type          string    `gorm:"size:50;not null" json:"type"` // bank, e-wallet ...
	Name          string    `gorm:"size:255;not null" json:"name"`
	AccountNumber string    `gorm:"size:100" json:"account_number"`
	Details       string    `gorm:"type:text" json:"details"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
