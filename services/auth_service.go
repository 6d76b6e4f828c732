package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wedding-backend/models"
	"wedding-backend/utils"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, JWTSecret: secret, TokenTTL: ttl}
}

// Login checks the credentials against the stored bcrypt hash and issues
// a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.Admin, error) {
	var admin models.Admin
	err := s.DB.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.JWTSecret, admin.ID, admin.Email, s.TokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

// Stats is the admin dashboard summary. Revenue sums completed orders.
type Stats struct {
	Orders         int64           `json:"orders"`
	Services       int64           `json:"services"`
	CustomRequests int64           `json:"customRequests"`
	Revenue        decimal.Decimal `json:"revenue"`
}

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

func (s *StatsService) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	db := s.DB.WithContext(ctx)
	if err := db.Model(&models.Order{}).Count(&st.Orders).Error; err != nil {
		return st, err
	}
	if err := db.Model(&models.Service{}).Count(&st.Services).Error; err != nil {
		return st, err
	}
	if err := db.Model(&models.CustomRequest{}).Count(&st.CustomRequests).Error; err != nil {
		return st, err
	}
	row := db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", models.StatusCompleted).
		Row()
	if err := row.Scan(&st.Revenue); err != nil {
		return st, err
	}
	return st, nil
}
