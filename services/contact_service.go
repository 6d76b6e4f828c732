package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"wedding-backend/models"
	"wedding-backend/utils"
)

type ContactInput struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	Instagram        string `json:"instagram"`
	ConsultationDate string `json:"consultation_date"`
	Message          string `json:"message"`
}

type ContactService struct {
	DB     *gorm.DB
	Mailer *AdminMailer
}

func NewContactService(db *gorm.DB, mailer *AdminMailer) *ContactService {
	return &ContactService{DB: db, Mailer: mailer}
}

func (s *ContactService) Create(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	var consult *time.Time
	if strings.TrimSpace(in.ConsultationDate) != "" {
		d, err := ParseDate(in.ConsultationDate)
		if err != nil {
			return nil, err
		}
		consult = &d
	}

	msg := models.ContactMessage{
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		Instagram:        in.Instagram,
		ConsultationDate: consult,
		Message:          in.Message,
	}
	if err := s.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}

	fields := []utils.Field{
		{Label: "Name", Value: msg.Name},
		{Label: "Email", Value: msg.Email},
		{Label: "Phone", Value: msg.Phone},
		{Label: "Instagram", Value: msg.Instagram},
		{Label: "Message", Value: msg.Message},
	}
	if consult != nil {
		fields = append(fields, utils.Field{Label: "Consultation date", Value: consult.Format("2006-01-02")})
	}
	s.Mailer.send(fmt.Sprintf("New contact message from %s", msg.Name), fields)
	return &msg, nil
}

func (s *ContactService) List(ctx context.Context, f ListFilter) ([]models.ContactMessage, int64, error) {
	q := s.DB.WithContext(ctx).Model(&models.ContactMessage{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	msgs := []models.ContactMessage{}
	err := q.Order("created_at DESC").Order("id DESC").
		Limit(f.Limit).Offset(f.offset()).
		Find(&msgs).Error
	return msgs, total, err
}

func (s *ContactService) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.DB, &models.ContactMessage{}, id)
}
