package services

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wedding-backend/models"
)

type GalleryCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

type GalleryImageInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"required"`
	CategoryID  *uint  `json:"category_id"`
	IsFeatured  bool   `json:"is_featured"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// GalleryFilter narrows the public image list.
type GalleryFilter struct {
	CategoryID   *uint
	FeaturedOnly bool
}

type GalleryService struct {
	DB *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{DB: db}
}

func (s *GalleryService) ListCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	var out []models.GalleryCategory
	err := s.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order, name").
		Find(&out).Error
	return out, err
}

func (s *GalleryService) CreateCategory(ctx context.Context, in GalleryCategoryInput) (uint, error) {
	cat := models.GalleryCategory{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive == nil || *in.IsActive,
		SortOrder:   in.SortOrder,
	}
	if err := s.DB.WithContext(ctx).Create(&cat).Error; err != nil {
		return 0, err
	}
	return cat.ID, nil
}

func (s *GalleryService) UpdateCategory(ctx context.Context, id uint, in GalleryCategoryInput) error {
	values := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"sort_order":  in.SortOrder,
	}
	if in.IsActive != nil {
		values["is_active"] = *in.IsActive
	}
	return updateByID(ctx, s.DB, &models.GalleryCategory{}, id, values)
}

// DeleteCategory refuses categories that still own images.
func (s *GalleryService) DeleteCategory(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cat models.GalleryCategory
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&cat, id).Error; err != nil {
			return notFoundAs(err, ErrNotFound)
		}

		var n int64
		if err := tx.Model(&models.GalleryImage{}).Where("category_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrCategoryHasImages
		}
		return tx.Delete(&models.GalleryCategory{}, id).Error
	})
}

func (s *GalleryService) imageQuery(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Table("gallery_images AS gi").
		Select("gi.*, gc.name AS category_name").
		Joins("LEFT JOIN gallery_categories gc ON gi.category_id = gc.id")
}

func (s *GalleryService) ListImages(ctx context.Context, f GalleryFilter) ([]models.GalleryImageView, error) {
	q := s.imageQuery(ctx).Where("gi.is_active = ?", true)
	if f.CategoryID != nil {
		q = q.Where("gi.category_id = ?", *f.CategoryID)
	}
	if f.FeaturedOnly {
		q = q.Where("gi.is_featured = ?", true)
	}

	out := []models.GalleryImageView{}
	err := q.Order("gi.sort_order").Order("gi.created_at DESC").Scan(&out).Error
	return out, err
}

func (s *GalleryService) GetImage(ctx context.Context, id uint) (*models.GalleryImageView, error) {
	var out []models.GalleryImageView
	if err := s.imageQuery(ctx).Where("gi.id = ?", id).Limit(1).Scan(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

func (s *GalleryService) CreateImage(ctx context.Context, in GalleryImageInput) (uint, error) {
	img := models.GalleryImage{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		IsFeatured:  in.IsFeatured,
		IsActive:    in.IsActive == nil || *in.IsActive,
		SortOrder:   in.SortOrder,
	}
	if err := s.DB.WithContext(ctx).Omit("Category").Create(&img).Error; err != nil {
		return 0, err
	}
	return img.ID, nil
}

func (s *GalleryService) UpdateImage(ctx context.Context, id uint, in GalleryImageInput) error {
	values := map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"image_url":   in.ImageURL,
		"category_id": in.CategoryID,
		"is_featured": in.IsFeatured,
		"sort_order":  in.SortOrder,
	}
	if in.IsActive != nil {
		values["is_active"] = *in.IsActive
	}
	return updateByID(ctx, s.DB, &models.GalleryImage{}, id, values)
}

func (s *GalleryService) DeleteImage(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.DB, &models.GalleryImage{}, id)
}
