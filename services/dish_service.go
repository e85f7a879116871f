package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-menu/models"
	"gorm.io/gorm"
)

// DishPatch holds a partial update. Nil fields keep the stored value.
// The owning menu cannot be changed through an update.
type DishPatch struct {
	Name        *string
	Description *string
	Price       *float64
}

// DishService menangani operasi dish
type DishService struct {
	db *gorm.DB
}

// NewDishService membuat instance baru DishService
func NewDishService(db *gorm.DB) *DishService {
	return &DishService{
		db: db,
	}
}

// ListDishes returns all dishes ordered by id, restricted to one menu when
// menuID is non-nil.
func (s *DishService) ListDishes(ctx context.Context, menuID *uint) ([]models.Dish, error) {
	query := s.db.WithContext(ctx).Order("id")
	if menuID != nil {
		query = query.Where("menu_id = ?", *menuID)
	}

	dishes := make([]models.Dish, 0)
	if err := query.Find(&dishes).Error; err != nil {
		return nil, translate(err, "failed to list dishes")
	}
	return dishes, nil
}

// CreateDish inserts a dish under an existing menu. A missing menu yields
// ErrValidation rather than a dangling reference.
func (s *DishService) CreateDish(ctx context.Context, name, description string, price float64, menuID uint) (*models.Dish, error) {
	dish := models.Dish{
		Name:        name,
		Description: description,
		Price:       price,
		MenuID:      menuID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var menu models.Menu
		if err := tx.Select("id").First(&menu, menuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: menu %d does not exist", ErrValidation, menuID)
			}
			return translate(err, "failed to look up menu %d", menuID)
		}
		if err := tx.Create(&dish).Error; err != nil {
			return translate(err, "failed to create dish")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// GetDish mendapatkan dish berdasarkan ID
func (s *DishService) GetDish(ctx context.Context, id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := s.db.WithContext(ctx).First(&dish, id).Error; err != nil {
		return nil, translate(err, "dish %d", id)
	}
	return &dish, nil
}

// UpdateDish applies patch to the dish with the given id.
func (s *DishService) UpdateDish(ctx context.Context, id uint, patch DishPatch) (*models.Dish, error) {
	db := s.db.WithContext(ctx)

	var dish models.Dish
	if err := db.First(&dish, id).Error; err != nil {
		return nil, translate(err, "dish %d", id)
	}

	if patch.Name != nil {
		dish.Name = *patch.Name
	}
	if patch.Description != nil {
		dish.Description = *patch.Description
	}
	if patch.Price != nil {
		dish.Price = *patch.Price
	}

	res := db.Model(&dish).Select("name", "description", "price").Updates(&dish)
	if err := updated(db, res, &models.Dish{}, id); err != nil {
		return nil, translate(err, "failed to update dish %d", id)
	}
	return &dish, nil
}

// DeleteDish removes a single dish.
func (s *DishService) DeleteDish(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var dish models.Dish
	if err := db.First(&dish, id).Error; err != nil {
		return translate(err, "dish %d", id)
	}
	if err := db.Delete(&dish).Error; err != nil {
		return translate(err, "failed to delete dish %d", id)
	}
	return nil
}
