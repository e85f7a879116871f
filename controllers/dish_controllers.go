package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-menu/services"
	"github.com/yeremiapane/restaurant-menu/utils"
)

type DishController struct {
	Dishes DishStore
}

func NewDishController(dishes DishStore) *DishController {
	return &DishController{Dishes: dishes}
}

type createDishRequest struct {
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       *Price  `json:"price" binding:"required"`
	MenuID      *uint   `json:"menuId" binding:"required"`
}

// menuId is fixed at creation and ignored here.
type updateDishRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *Price  `json:"price"`
}

// GetAllDishes accepts an optional ?menu_id= filter.
func (dc *DishController) GetAllDishes(c *gin.Context) {
	var menuID *uint
	if raw := c.Query("menu_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid menu_id %q", raw))
			return
		}
		v := uint(id)
		menuID = &v
	}

	dishes, err := dc.Dishes.ListDishes(c.Request.Context(), menuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// CreateDish
func (dc *DishController) CreateDish(c *gin.Context) {
	var body createDishRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dish, err := dc.Dishes.CreateDish(c.Request.Context(),
		*body.Name, valueOr(body.Description, ""), float64(*body.Price), *body.MenuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New dish created: %d (%s, menu=%d)", dish.ID, dish.Name, dish.MenuID)
	c.JSON(http.StatusCreated, dish)
}

// GetDishByID
func (dc *DishController) GetDishByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dish, err := dc.Dishes.GetDish(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// UpdateDish
func (dc *DishController) UpdateDish(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var body updateDishRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dish, err := dc.Dishes.UpdateDish(c.Request.Context(), id, services.DishPatch{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price.float64Ptr(),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// DeleteDish
func (dc *DishController) DeleteDish(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := dc.Dishes.DeleteDish(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Dish deleted: %d", id)
	utils.RespondMessage(c, http.StatusOK, "Dish deleted")
}
