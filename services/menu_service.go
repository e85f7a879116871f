package services

import (
	"context"

	"github.com/yeremiapane/restaurant-menu/models"
	"gorm.io/gorm"
)

// MenuPatch holds a partial update. Nil fields keep the stored value.
type MenuPatch struct {
	Name        *string
	Description *string
}

// MenuService menangani operasi menu
type MenuService struct {
	db *gorm.DB
}

// NewMenuService membuat instance baru MenuService
func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{
		db: db,
	}
}

// ListMenus returns every menu ordered by id.
func (s *MenuService) ListMenus(ctx context.Context) ([]models.Menu, error) {
	menus := make([]models.Menu, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&menus).Error; err != nil {
		return nil, translate(err, "failed to list menus")
	}
	return menus, nil
}

// CreateMenu inserts a new menu and returns it with its generated id.
func (s *MenuService) CreateMenu(ctx context.Context, name, description string) (*models.Menu, error) {
	menu := models.Menu{
		Name:        name,
		Description: description,
	}
	if err := s.db.WithContext(ctx).Create(&menu).Error; err != nil {
		return nil, translate(err, "failed to create menu")
	}
	return &menu, nil
}

// GetMenu mendapatkan menu berdasarkan ID
func (s *MenuService) GetMenu(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	if err := s.db.WithContext(ctx).First(&menu, id).Error; err != nil {
		return nil, translate(err, "menu %d", id)
	}
	return &menu, nil
}

// ListMenuDishes returns the dishes of one menu, or ErrNotFound when the
// menu itself does not exist.
func (s *MenuService) ListMenuDishes(ctx context.Context, id uint) ([]models.Dish, error) {
	var menu models.Menu
	err := s.db.WithContext(ctx).
		Preload("Dishes", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&menu, id).Error
	if err != nil {
		return nil, translate(err, "menu %d", id)
	}
	if menu.Dishes == nil {
		return []models.Dish{}, nil
	}
	return menu.Dishes, nil
}

// UpdateMenu applies patch to the menu with the given id.
func (s *MenuService) UpdateMenu(ctx context.Context, id uint, patch MenuPatch) (*models.Menu, error) {
	db := s.db.WithContext(ctx)

	var menu models.Menu
	if err := db.First(&menu, id).Error; err != nil {
		return nil, translate(err, "menu %d", id)
	}

	if patch.Name != nil {
		menu.Name = *patch.Name
	}
	if patch.Description != nil {
		menu.Description = *patch.Description
	}

	// Updates never inserts, so a row deleted after the lookup stays deleted.
	res := db.Model(&menu).Select("name", "description").Updates(&menu)
	if err := updated(db, res, &models.Menu{}, id); err != nil {
		return nil, translate(err, "failed to update menu %d", id)
	}
	return &menu, nil
}

// DeleteMenu removes the menu and all of its dishes in one transaction.
func (s *MenuService) DeleteMenu(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var menu models.Menu
		if err := tx.First(&menu, id).Error; err != nil {
			return translate(err, "menu %d", id)
		}

		// Hapus dish terlebih dahulu agar tidak ada dish yang tertinggal,
		// apapun dukungan foreign key dari driver.
		if err := tx.Where("menu_id = ?", id).Delete(&models.Dish{}).Error; err != nil {
			return translate(err, "failed to delete dishes of menu %d", id)
		}
		if err := tx.Delete(&menu).Error; err != nil {
			return translate(err, "failed to delete menu %d", id)
		}
		return nil
	})
}
