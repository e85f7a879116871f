package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-menu/models"
	"github.com/yeremiapane/restaurant-menu/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the menus and dishes tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Menu{}, &models.Dish{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if db.Dialector.Name() == "sqlite" {
		verifyForeignKeys(db)
	}
	return nil
}

// verifyForeignKeys only logs. Cascade delete is also done explicitly by the
// menu service, so a connection without foreign keys still keeps dishes
// from outliving their menu.
func verifyForeignKeys(db *gorm.DB) {
	var enabled int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
		utils.ErrorLogger.Errorf("Error reading foreign_keys pragma: %v", err)
		return
	}
	if enabled != 1 {
		utils.InfoLogger.Warn("SQLite foreign keys are disabled on this connection")
		return
	}
	utils.InfoLogger.Debug("SQLite foreign keys verified")
}
