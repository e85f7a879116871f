package controllers

import (
	"context"

	"github.com/yeremiapane/restaurant-menu/models"
	"github.com/yeremiapane/restaurant-menu/services"
)

// MenuStore is the subset of services.MenuService the handlers need.
type MenuStore interface {
	ListMenus(ctx context.Context) ([]models.Menu, error)
	CreateMenu(ctx context.Context, name, description string) (*models.Menu, error)
	GetMenu(ctx context.Context, id uint) (*models.Menu, error)
	ListMenuDishes(ctx context.Context, id uint) ([]models.Dish, error)
	UpdateMenu(ctx context.Context, id uint, patch services.MenuPatch) (*models.Menu, error)
	DeleteMenu(ctx context.Context, id uint) error
}

// DishStore is the subset of services.DishService the handlers need.
type DishStore interface {
	ListDishes(ctx context.Context, menuID *uint) ([]models.Dish, error)
	CreateDish(ctx context.Context, name, description string, price float64, menuID uint) (*models.Dish, error)
	GetDish(ctx context.Context, id uint) (*models.Dish, error)
	UpdateDish(ctx context.Context, id uint, patch services.DishPatch) (*models.Dish, error)
	DeleteDish(ctx context.Context, id uint) error
}
