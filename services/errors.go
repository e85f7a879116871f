package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrValidation is returned when input is rejected by the store,
	// e.g. a dish pointing at a menu that does not exist.
	ErrValidation = errors.New("validation failed")
)

// translate maps gorm errors onto the service sentinels.
func translate(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// updated checks the result of an UPDATE by id. Zero affected rows only means
// not found when the row is really gone; MySQL reports 0 for unchanged rows.
func updated(db *gorm.DB, res *gorm.DB, model interface{}, id uint) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var n int64
	if err := db.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
