package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceItem attaches an item to a service, optionally overriding its price.
type ServiceItem struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	ServiceID   uint                `gorm:"not null;uniqueIndex:idx_service_item" json:"service_id"`
	ItemID      uint                `gorm:"not null;uniqueIndex:idx_service_item;index" json:"item_id"`
	CustomPrice decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"custom_price"`
	IsRequired  bool                `gorm:"not null" json:"is_required"`
	SortOrder   int                 `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time           `json:"created_at"`

	Service Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"-"`
	Item    Item    `gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT" json:"-"`
}
