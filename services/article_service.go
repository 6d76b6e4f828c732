package services

import (
	"context"

	"gorm.io/gorm"

	"wedding-backend/models"
)

type ArticleInput struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

type ArticleService struct {
	DB *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{DB: db}
}

func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	var out []models.Article
	err := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&out).Error
	return out, err
}

func (s *ArticleService) Get(ctx context.Context, id uint) (*models.Article, error) {
	var a models.Article
	if err := s.DB.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return &a, nil
}

func (s *ArticleService) Create(ctx context.Context, in ArticleInput) (uint, error) {
	a := models.Article{
		Title:    in.Title,
		Content:  in.Content,
		Excerpt:  in.Excerpt,
		Image:    in.Image,
		Category: in.Category,
	}
	if err := s.DB.WithContext(ctx).Create(&a).Error; err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (s *ArticleService) Update(ctx context.Context, id uint, in ArticleInput) error {
	return updateByID(ctx, s.DB, &models.Article{}, id, map[string]any{
		"title":    in.Title,
		"content":  in.Content,
		"excerpt":  in.Excerpt,
		"image":    in.Image,
		"category": in.Category,
	})
}

func (s *ArticleService) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.DB, &models.Article{}, id)
}
