package services

import (
	"context"
	"encoding/json"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wedding-backend/models"
)

type OrderInput struct {
	Name          string          `json:"name" binding:"required"`
	Email         string          `json:"email" binding:"required"`
	Phone         string          `json:"phone" binding:"required"`
	Address       string          `json:"address"`
	WeddingDate   string          `json:"wedding_date" binding:"required"`
	Notes         string          `json:"notes"`
	ServiceID     *uint           `json:"service_id"`
	ServiceName   string          `json:"service_name"`
	SelectedItems json.RawMessage `json:"selected_items"`
	TotalAmount   Money           `json:"total_amount"`
	BookingAmount Money           `json:"booking_amount"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

// ListFilter narrows paginated admin lists. Empty Statuses means all.
type ListFilter struct {
	Page     int
	Limit    int
	Statuses []string
}

func (f ListFilter) offset() int {
	return (f.Page - 1) * f.Limit
}

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// Create stores a storefront order. Status always starts as pending.
func (s *OrderService) Create(ctx context.Context, in OrderInput) (*models.Order, error) {
	date, err := ParseDate(in.WeddingDate)
	if err != nil {
		return nil, err
	}

	selected := datatypes.JSON("[]")
	if raw := json.RawMessage(in.SelectedItems); len(raw) > 0 && string(raw) != "null" {
		if !json.Valid(raw) {
			return nil, ErrInvalidSelectedItems
		}
		selected = datatypes.JSON(raw)
	}

	order := models.Order{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		WeddingDate:   date,
		Notes:         in.Notes,
		ServiceID:     in.ServiceID,
		ServiceName:   in.ServiceName,
		SelectedItems: selected,
		TotalAmount:   in.TotalAmount.OrZero(),
		BookingAmount: in.BookingAmount.NullDecimal,
		Status:        models.StatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns newest orders first along with the unpaginated total.
func (s *OrderService) List(ctx context.Context, f ListFilter) ([]models.Order, int64, error) {
	q := s.DB.WithContext(ctx).Model(&models.Order{})
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orders := []models.Order{}
	err := q.Order("created_at DESC").Order("id DESC").
		Limit(f.Limit).Offset(f.offset()).
		Find(&orders).Error
	return orders, total, err
}

func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return &order, nil
}

// UpdateStatus stores status verbatim; values outside the known workflow
// are accepted with a warning.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !models.IsKnownStatus(status) {
		log.Printf("⚠️ order %d: unknown status %q stored as-is", id, status)
	}
	return updateByID(ctx, s.DB, &models.Order{}, id, map[string]any{"status": status})
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.DB, &models.Order{}, id)
}
