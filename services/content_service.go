package services

import (
	"context"

	"gorm.io/gorm"

	"wedding-backend/models"
)

type ContentSectionInput struct {
	SectionName string `json:"section_name" binding:"required"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ButtonText  string `json:"button_text"`
	ButtonURL   string `json:"button_url"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

type ServiceFeatureInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// ContentService manages the editable home page blocks and feature cards.
type ContentService struct {
	DB *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{DB: db}
}

// ListSections returns active sections, or every section when activeOnly
// is false (the admin editor).
func (s *ContentService) ListSections(ctx context.Context, activeOnly bool) ([]models.ContentSection, error) {
	q := s.DB.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []models.ContentSection
	err := q.Order("sort_order, id").Find(&out).Error
	return out, err
}

func (s *ContentService) GetSection(ctx context.Context, name string) (*models.ContentSection, error) {
	var sec models.ContentSection
	if err := s.DB.WithContext(ctx).Where("section_name = ?", name).First(&sec).Error; err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return &sec, nil
}

func (s *ContentService) CreateSection(ctx context.Context, in ContentSectionInput) (uint, error) {
	sec := models.ContentSection{
		SectionName: in.SectionName,
		Title:       in.Title,
		Subtitle:    in.Subtitle,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		ButtonText:  in.ButtonText,
		ButtonURL:   in.ButtonURL,
		IsActive:    in.IsActive == nil || *in.IsActive,
		SortOrder:   in.SortOrder,
	}
	if err := s.DB.WithContext(ctx).Create(&sec).Error; err != nil {
		if isDuplicateEntry(err) {
			return 0, ErrDuplicateSection
		}
		return 0, err
	}
	return sec.ID, nil
}

func (s *ContentService) UpdateSection(ctx context.Context, id uint, in ContentSectionInput) error {
	values := map[string]any{
		"section_name": in.SectionName,
		"title":        in.Title,
		"subtitle":     in.Subtitle,
		"description":  in.Description,
		"image_url":    in.ImageURL,
		"button_text":  in.ButtonText,
		"button_url":   in.ButtonURL,
		"sort_order":   in.SortOrder,
	}
	if in.IsActive != nil {
		values["is_active"] = *in.IsActive
	}
	err := updateByID(ctx, s.DB, &models.ContentSection{}, id, values)
	if isDuplicateEntry(err) {
		return ErrDuplicateSection
	}
	return err
}

func (s *ContentService) DeleteSection(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.DB, &models.ContentSection{}, id)
}

func (s *ContentService) ListFeatures(ctx context.Context, activeOnly bool) ([]models.ServiceFeature, error) {
	q := s.DB.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []models.ServiceFeature
	err := q.Order("sort_order, id").Find(&out).Error
	return out, err
}

func (s *ContentService) CreateFeature(ctx context.Context, in ServiceFeatureInput) (uint, error) {
	f := models.ServiceFeature{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		IsActive:    in.IsActive == nil || *in.IsActive,
		SortOrder:   in.SortOrder,
	}
	if err := s.DB.WithContext(ctx).Create(&f).Error; err != nil {
		return 0, err
	}
	return f.ID, nil
}

func (s *ContentService) UpdateFeature(ctx context.Context, id uint, in ServiceFeatureInput) error {
	values := map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"icon":        in.Icon,
		"sort_order":  in.SortOrder,
	}
	if in.IsActive != nil {
		values["is_active"] = *in.IsActive
	}
	return updateByID(ctx, s.DB, &models.ServiceFeature{}, id, values)
}

func (s *ContentService) DeleteFeature(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.DB, &models.ServiceFeature{}, id)
}
