package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-menu/services"
	"github.com/yeremiapane/restaurant-menu/utils"
)

type MenuController struct {
	Menus MenuStore
}

func NewMenuController(menus MenuStore) *MenuController {
	return &MenuController{Menus: menus}
}

// Pointer fields let binding tell "absent" apart from an empty value.
type createMenuRequest struct {
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type updateMenuRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	menus, err := mc.Menus.ListMenus(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var body createMenuRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := mc.Menus.CreateMenu(c.Request.Context(), *body.Name, valueOr(body.Description, ""))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New menu created: %d (%s)", menu.ID, menu.Name)
	c.JSON(http.StatusCreated, menu)
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := mc.Menus.GetMenu(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// GetMenuDishes -> daftar dish untuk satu menu
func (mc *MenuController) GetMenuDishes(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dishes, err := mc.Menus.ListMenuDishes(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// UpdateMenu only overwrites the fields present in the body.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var body updateMenuRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := mc.Menus.UpdateMenu(c.Request.Context(), id, services.MenuPatch{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// DeleteMenu also removes every dish of the menu.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.Menus.DeleteMenu(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu deleted: %d", id)
	utils.RespondMessage(c, http.StatusOK, "Menu deleted")
}
