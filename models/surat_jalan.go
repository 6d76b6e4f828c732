package models

import "time"

// SuratJalan is the delivery note the crew carries to the venue. Rows are
// swept once the wedding date has passed.
type SuratJalan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     *uint     `gorm:"index" json:"order_id"`
	ClientName  string    `gorm:"size:255;not null" json:"client_name"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Venue       string    `gorm:"type:text" json:"venue"`
	WeddingDate time.Time `gorm:"type:date;not null;index" json:"wedding_date"`
	EventTime   string    `gorm:"size:50" json:"event_time"`
	Items       string    `gorm:"type:text" json:"items"`
	Notes       string    `gorm:"type:text" json:"notes"`

	DecorationImage string `gorm:"size:255" json:"decoration_image"`
	VenueImage      string `gorm:"size:255" json:"venue_image"`
	SignatureImage  string `gorm:"size:255" json:"signature_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Order *Order `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL" json:"-"`
}

func (SuratJalan) TableName() string {
	return "surat_jalan"
}

// ImageFiles lists the non-empty stored image names.
func (s SuratJalan) ImageFiles() []string {
	out := make([]string, 0, 3)
	for _, f := range []string{s.DecorationImage, s.VenueImage, s.SignatureImage} {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
