package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-menu/models"
	"github.com/yeremiapane/restaurant-menu/utils"
)

type PageController struct {
	Menus  MenuStore
	Dishes DishStore
}

func NewPageController(menus MenuStore, dishes DishStore) *PageController {
	return &PageController{Menus: menus, Dishes: dishes}
}

// MenuSection is one menu with its dishes as rendered on the home page.
type MenuSection struct {
	Menu   models.Menu
	Dishes []models.Dish
}

// Home renders index.html with every menu and its dishes.
func (pc *PageController) Home(c *gin.Context) {
	ctx := c.Request.Context()

	menus, err := pc.Menus.ListMenus(ctx)
	if err != nil {
		utils.ErrorLogger.Errorf("Error loading menus for home page: %v", err)
		c.String(http.StatusInternalServerError, "failed to load menus")
		return
	}
	dishes, err := pc.Dishes.ListDishes(ctx, nil)
	if err != nil {
		utils.ErrorLogger.Errorf("Error loading dishes for home page: %v", err)
		c.String(http.StatusInternalServerError, "failed to load dishes")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Menus": groupDishes(menus, dishes),
	})
}

func groupDishes(menus []models.Menu, dishes []models.Dish) []MenuSection {
	byMenu := make(map[uint][]models.Dish, len(menus))
	for _, d := range dishes {
		byMenu[d.MenuID] = append(byMenu[d.MenuID], d)
	}

	sections := make([]MenuSection, 0, len(menus))
	for _, m := range menus {
		sections = append(sections, MenuSection{Menu: m, Dishes: byMenu[m.ID]})
	}
	return sections
}
