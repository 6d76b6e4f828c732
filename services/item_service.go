package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wedding-backend/models"
)

type ItemInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"is_active"`
}

// ItemService manages the master item catalog and its image gallery.
type ItemService struct {
	DB     *gorm.DB
	Images *ImageStore
}

func NewItemService(db *gorm.DB, images *ImageStore) *ItemService {
	return &ItemService{DB: db, Images: images}
}

func (s *ItemService) ListActive(ctx context.Context) ([]models.Item, error) {
	var out []models.Item
	err := s.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category, name").
		Find(&out).Error
	return out, err
}

// Categories lists distinct non-empty categories of active items.
func (s *ItemService) Categories(ctx context.Context) ([]string, error) {
	out := []string{}
	err := s.DB.WithContext(ctx).
		Model(&models.Item{}).
		Where("is_active = ? AND category IS NOT NULL AND category <> ''", true).
		Distinct().
		Order("category").
		Pluck("category", &out).Error
	return out, err
}

func (s *ItemService) Get(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := s.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFoundAs(err, ErrItemNotFound)
	}
	return &item, nil
}

// Create inserts an item; new items are active unless is_active says otherwise.
func (s *ItemService) Create(ctx context.Context, in ItemInput) (uint, error) {
	item := models.Item{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price.OrZero(),
		Category:    in.Category,
		IsActive:    in.IsActive == nil || *in.IsActive,
	}
	item.SetImageList(nil)
	if err := s.DB.WithContext(ctx).Create(&item).Error; err != nil {
		return 0, err
	}
	return item.ID, nil
}

// Update rewrites the editable fields. An omitted is_active keeps the
// current value.
func (s *ItemService) Update(ctx context.Context, id uint, in ItemInput) error {
	values := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price.OrZero(),
		"category":    in.Category,
	}
	if in.IsActive != nil {
		values["is_active"] = *in.IsActive
	}
	err := updateByID(ctx, s.DB, &models.Item{}, id, values)
	if errors.Is(err, ErrNotFound) {
		return ErrItemNotFound
	}
	return err
}

// Delete refuses items still attached to a service. The usage check and
// the delete share a transaction; image files go after commit.
func (s *ItemService) Delete(ctx context.Context, id uint) error {
	var removed models.Item
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&removed, id).Error; err != nil {
			return notFoundAs(err, ErrItemNotFound)
		}

		var used int64
		if err := tx.Model(&models.ServiceItem{}).Where("item_id = ?", id).Count(&used).Error; err != nil {
			return err
		}
		if used > 0 {
			return ErrItemInUse
		}

		return tx.Delete(&models.Item{}, id).Error
	})
	if err != nil {
		return err
	}

	s.Images.Remove(removed.ImageList()...)
	return nil
}

// AddImages stores the uploads and appends them to the item's image list.
// Files saved for a failed update are removed again.
func (s *ItemService) AddImages(ctx context.Context, id uint, files []*multipart.FileHeader) ([]string, error) {
	saved := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := s.Images.SaveUpload(fh)
		if err != nil {
			s.Images.Remove(saved...)
			return nil, err
		}
		saved = append(saved, name)
	}

	var images []string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, id).Error; err != nil {
			return notFoundAs(err, ErrItemNotFound)
		}
		images = append(item.ImageList(), saved...)
		item.SetImageList(images)
		return tx.Model(&item).Update("images", item.Images).Error
	})
	if err != nil {
		s.Images.Remove(saved...)
		return nil, err
	}
	return images, nil
}

// RemoveImage drops filename from the item's list, then deletes the file.
func (s *ItemService) RemoveImage(ctx context.Context, id uint, filename string) ([]string, error) {
	var images []string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, id).Error; err != nil {
			return notFoundAs(err, ErrItemNotFound)
		}

		found := false
		images = []string{}
		for _, img := range item.ImageList() {
			if img == filename {
				found = true
				continue
			}
			images = append(images, img)
		}
		if !found {
			return ErrNotFound
		}

		item.SetImageList(images)
		if err := tx.Model(&item).Update("images", item.Images).Error; err != nil {
			return fmt.Errorf("update images: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Images.Remove(filename)
	return images, nil
}
