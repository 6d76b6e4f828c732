package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wedding-backend/models"
)

type ServiceInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   Money  `json:"base_price"`
	Image       string `json:"image"`
}

type ServiceItemInput struct {
	ItemID      uint  `json:"item_id"`
	CustomPrice Money `json:"custom_price"`
	IsRequired  bool  `json:"is_required"`
	SortOrder   int   `json:"sort_order"`
}

// ServiceItemView is a service item joined with its catalog item.
// FinalPrice is the custom price when set, else the item price.
type ServiceItemView struct {
	ID          uint                `json:"id"`
	ServiceID   uint                `json:"service_id"`
	ItemID      uint                `json:"item_id"`
	CustomPrice decimal.NullDecimal `json:"custom_price"`
	IsRequired  bool                `json:"is_required"`
	SortOrder   int                 `json:"sort_order"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	ItemPrice   decimal.Decimal     `json:"item_price"`
	Category    string              `json:"category"`
	FinalPrice  decimal.Decimal     `json:"final_price"`
}

// CatalogService manages wedding packages and the items attached to them.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	err := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&out).Error
	return out, err
}

func (s *CatalogService) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := s.DB.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, notFoundAs(err, ErrServiceNotFound)
	}
	return &svc, nil
}

func (s *CatalogService) CreateService(ctx context.Context, in ServiceInput) (uint, error) {
	svc := models.Service{
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice.OrZero(),
		Image:       in.Image,
	}
	if err := s.DB.WithContext(ctx).Create(&svc).Error; err != nil {
		return 0, err
	}
	return svc.ID, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id uint, in ServiceInput) error {
	err := updateByID(ctx, s.DB, &models.Service{}, id, map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"base_price":  in.BasePrice.OrZero(),
		"image":       in.Image,
	})
	if errors.Is(err, ErrNotFound) {
		return ErrServiceNotFound
	}
	return err
}

// DeleteService drops the service; its service items cascade.
func (s *CatalogService) DeleteService(ctx context.Context, id uint) error {
	err := deleteByID(ctx, s.DB, &models.Service{}, id)
	if errors.Is(err, ErrNotFound) {
		return ErrServiceNotFound
	}
	return err
}

func (s *CatalogService) ListServiceItems(ctx context.Context, serviceID uint) ([]ServiceItemView, error) {
	out := []ServiceItemView{}
	err := s.DB.WithContext(ctx).
		Table("service_items AS si").
		Select(`si.id, si.service_id, si.item_id, si.custom_price, si.is_required, si.sort_order,
			i.name, i.description, i.price AS item_price, i.category,
			COALESCE(si.custom_price, i.price) AS final_price`).
		Joins("JOIN items i ON si.item_id = i.id").
		Where("si.service_id = ? AND i.is_active = ?", serviceID, true).
		Order("si.sort_order, i.name").
		Scan(&out).Error
	return out, err
}

// AddServiceItem attaches an active item to an existing service.
func (s *CatalogService) AddServiceItem(ctx context.Context, serviceID uint, in ServiceItemInput) (uint, error) {
	db := s.DB.WithContext(ctx)

	n, err := countWhere(ctx, s.DB, &models.Item{}, "id = ? AND is_active = ?", in.ItemID, true)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrItemNotFound
	}

	n, err = countWhere(ctx, s.DB, &models.Service{}, "id = ?", serviceID)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrServiceNotFound
	}

	si := models.ServiceItem{
		ServiceID:   serviceID,
		ItemID:      in.ItemID,
		CustomPrice: in.CustomPrice.NullDecimal,
		IsRequired:  in.IsRequired,
		SortOrder:   in.SortOrder,
	}
	if err := db.Omit("Service", "Item").Create(&si).Error; err != nil {
		if isDuplicateEntry(err) {
			return 0, ErrDuplicateServiceItem
		}
		return 0, fmt.Errorf("insert service item: %w", err)
	}
	return si.ID, nil
}

func (s *CatalogService) UpdateServiceItem(ctx context.Context, id uint, in ServiceItemInput) error {
	return updateByID(ctx, s.DB, &models.ServiceItem{}, id, map[string]any{
		"custom_price": in.CustomPrice.NullDecimal,
		"is_required":  in.IsRequired,
		"sort_order":   in.SortOrder,
	})
}

func (s *CatalogService) DeleteServiceItem(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.DB, &models.ServiceItem{}, id)
}
