package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wedding-backend/models"
	"wedding-backend/utils"
)

type CustomRequestInput struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	WeddingDate        string `json:"wedding_date"`
	BookingAmount      Money  `json:"booking_amount"`
	Services           string `json:"services"`
	AdditionalRequests string `json:"additional_requests"`
}

// MissingRequired reports a blank name, email, phone or wedding date.
func (in CustomRequestInput) MissingRequired() bool {
	for _, v := range []string{in.Name, in.Email, in.Phone, in.WeddingDate} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// QuoteInput keeps services raw so a non-string value prices as empty.
type QuoteInput struct {
	Services json.RawMessage `json:"services"`
}

func (in QuoteInput) ServicesText() string {
	var s string
	if err := json.Unmarshal(in.Services, &s); err != nil {
		return ""
	}
	return s
}

// CustomRequestView is a stored request plus its freshly resolved prices.
type CustomRequestView struct {
	models.CustomRequest
	Items       []PricedLine    `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type CustomRequestService struct {
	DB      *gorm.DB
	Pricing *PriceResolver
	Mailer  *AdminMailer
}

func NewCustomRequestService(db *gorm.DB, pricing *PriceResolver, mailer *AdminMailer) *CustomRequestService {
	return &CustomRequestService{DB: db, Pricing: pricing, Mailer: mailer}
}

func (s *CustomRequestService) Create(ctx context.Context, in CustomRequestInput) (*models.CustomRequest, error) {
	date, err := ParseDate(in.WeddingDate)
	if err != nil {
		return nil, err
	}

	req := models.CustomRequest{
		Name:               strings.TrimSpace(in.Name),
		Email:              strings.TrimSpace(in.Email),
		Phone:              strings.TrimSpace(in.Phone),
		WeddingDate:        date,
		BookingAmount:      in.BookingAmount.NullDecimal,
		Services:           in.Services,
		AdditionalRequests: in.AdditionalRequests,
		Status:             models.StatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(&req).Error; err != nil {
		return nil, err
	}

	s.Mailer.send(fmt.Sprintf("New custom request #%d", req.ID), []utils.Field{
		{Label: "Name", Value: req.Name},
		{Label: "Email", Value: req.Email},
		{Label: "Phone", Value: req.Phone},
		{Label: "Wedding date", Value: req.WeddingDate.Format("2006-01-02")},
		{Label: "Services", Value: req.Services},
		{Label: "Additional requests", Value: req.AdditionalRequests},
	})
	return &req, nil
}

// Quote prices a services string without storing anything.
func (s *CustomRequestService) Quote(ctx context.Context, services string) PriceBreakdown {
	return s.Pricing.Resolve(ctx, services)
}

func (s *CustomRequestService) view(ctx context.Context, req models.CustomRequest) CustomRequestView {
	b := s.Pricing.Resolve(ctx, req.Services)
	return CustomRequestView{CustomRequest: req, Items: b.Items, TotalAmount: b.TotalAmount}
}

func (s *CustomRequestService) List(ctx context.Context, f ListFilter) ([]CustomRequestView, int64, error) {
	q := s.DB.WithContext(ctx).Model(&models.CustomRequest{})
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.CustomRequest
	err := q.Order("created_at DESC").Order("id DESC").
		Limit(f.Limit).Offset(f.offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]CustomRequestView, 0, len(rows))
	for _, r := range rows {
		views = append(views, s.view(ctx, r))
	}
	return views, total, nil
}

func (s *CustomRequestService) Get(ctx context.Context, id uint) (*CustomRequestView, error) {
	var req models.CustomRequest
	if err := s.DB.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	v := s.view(ctx, req)
	return &v, nil
}

func (s *CustomRequestService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !models.IsKnownStatus(status) {
		log.Printf("⚠️ custom request %d: unknown status %q stored as-is", id, status)
	}
	return updateByID(ctx, s.DB, &models.CustomRequest{}, id, map[string]any{"status": status})
}

func (s *CustomRequestService) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.DB, &models.CustomRequest{}, id)
}
