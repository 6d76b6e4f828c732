package services

import (
	"context"

	"gorm.io/gorm"
)

// updateByID applies values to the row with the given id. Zero matched rows
// is reported as ErrNotFound (the DSN sets clientFoundRows, so unchanged
// rows still count as matched).
func updateByID(ctx context.Context, db *gorm.DB, model any, id uint, values map[string]any) error {
	res := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, db *gorm.DB, model any, id uint) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func countWhere(ctx context.Context, db *gorm.DB, model any, query string, args ...any) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(model).Where(query, args...).Count(&n).Error
	return n, err
}
