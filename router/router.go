package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-menu/controllers"
	"github.com/yeremiapane/restaurant-menu/middlewares"
	"github.com/yeremiapane/restaurant-menu/services"
	"github.com/yeremiapane/restaurant-menu/templates"
	"gorm.io/gorm"
)

// Options tunes the middleware chain. Zero values disable rate limiting
// and allow any CORS origin.
type Options struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

func SetupRouter(db *gorm.DB, opts Options) (*gin.Engine, error) {
	r := gin.New()

	pages, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	r.SetHTMLTemplate(pages)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(origins))
	if opts.RateLimitRPS > 0 && opts.RateLimitBurst > 0 {
		r.Use(middlewares.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).RateLimit())
	}

	// Inisialisasi service & controller
	menuSvc := services.NewMenuService(db)
	dishSvc := services.NewDishService(db)

	menuCtrl := controllers.NewMenuController(menuSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	pageCtrl := controllers.NewPageController(menuSvc, dishSvc)

	r.GET("/", pageCtrl.Home)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		// MENUS
		api.GET("/menus", menuCtrl.GetAllMenus)
		api.POST("/menus", menuCtrl.CreateMenu)
		api.GET("/menus/:id", menuCtrl.GetMenuByID)
		api.GET("/menus/:id/dishes", menuCtrl.GetMenuDishes)
		api.PUT("/menus/:id", menuCtrl.UpdateMenu)
		api.DELETE("/menus/:id", menuCtrl.DeleteMenu)

		// DISHES
		api.GET("/dishes", dishCtrl.GetAllDishes)
		api.POST("/dishes", dishCtrl.CreateDish)
		api.GET("/dishes/:id", dishCtrl.GetDishByID)
		api.PUT("/dishes/:id", dishCtrl.UpdateDish)
		api.DELETE("/dishes/:id", dishCtrl.DeleteDish)
	}

	return r, nil
}
