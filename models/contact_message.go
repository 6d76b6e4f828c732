package models

import "time"

type ContactMessage struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Email            string     `gorm:"size:255" json:"email"`
	Phone            string     `gorm:"size:50" json:"phone"`
	Address          string     `gorm:"type:text" json:"address"`
	Instagram        string     `gorm:"size:100" json:"instagram"`
	ConsultationDate *time.Time `gorm:"type:date" json:"consultation_date"`
	Message          string     `gorm:"type:text" json:"message"`
	CreatedAt        time.Time  `gorm:"index" json:"created_at"`
}
