package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Item is a master catalog entry (decoration, catering, photo...) that can
// be attached to services and priced in custom requests.
type Item struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null;index" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"price"`
	Category    string          `gorm:"size:100;index" json:"category"`
	IsActive    bool            `gorm:"not null;index" json:"is_active"`
	Images      datatypes.JSON  `gorm:"type:json" json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ImageList decodes the images column. A malformed column reads as empty.
func (i Item) ImageList() []string {
	if len(i.Images) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(i.Images, &out); err != nil {
		return []string{}
	}
	return out
}

// SetImageList encodes names into the images column.
func (i *Item) SetImageList(names []string) {
	if names == nil {
		names = []string{}
	}
	b, _ := json.Marshal(names)
	i.Images = datatypes.JSON(b)
}
