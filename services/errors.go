package services

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrNotFound              = errors.New("record not found")
	ErrItemNotFound          = errors.New("item not found")
	ErrServiceNotFound       = errors.New("service not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrItemInUse             = errors.New("item is used in services")
	ErrDuplicateServiceItem  = errors.New("item already exists in this service")
	ErrCategoryHasImages     = errors.New("category has images")
	ErrDuplicateSection      = errors.New("section name already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidDate           = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidID             = errors.New("invalid id")
	ErrInvalidImage          = errors.New("unsupported image upload")
	ErrInvalidSelectedItems  = errors.New("selected_items must be valid JSON")
)

// isDuplicateEntry detects MySQL error 1062 (unique index violation).
func isDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// notFoundAs maps gorm's missing-row error to target, passing others through.
func notFoundAs(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
