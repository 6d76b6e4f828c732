package services

import (
	"context"

	"gorm.io/gorm"

	"wedding-backend/models"
)

type PaymentMethodInput struct {
	Type          string `json:"type" binding:"required"`
	Name          string `json:"name" binding:"required"`
	AccountNumber string `json:"account_number"`
	Details       string `json:"details"`
}

type PaymentMethodService struct {
	DB *gorm.DB
}

func NewPaymentMethodService(db *gorm.DB) *PaymentMethodService {
	return &PaymentMethodService{DB: db}
}

func (s *PaymentMethodService) List(ctx context.Context) ([]models.PaymentMethod, error) {
	var out []models.PaymentMethod
	err := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&out).Error
	return out, err
}

func (s *PaymentMethodService) Create(ctx context.Context, in PaymentMethodInput) (uint, error) {
	pm := models.PaymentMethod{
		Type:          in.Type,
		Name:          in.Name,
		AccountNumber: in.AccountNumber,
		Details:       in.Details,
	}
	if err := s.DB.WithContext(ctx).Create(&pm).Error; err != nil {
		return 0, err
	}
	return pm.ID, nil
}

func (s *PaymentMethodService) Update(ctx context.Context, id uint, in PaymentMethodInput) error {
	return updateByID(ctx, s.DB, &models.PaymentMethod{}, id, map[string]any{
		"type":           in.Type,
		"name":           in.Name,
		"account_number": in.AccountNumber,
		"details":        in.Details,
	})
}

func (s *PaymentMethodService) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.DB, &models.PaymentMethod{}, id)
}
