package models

// Dish is a priced item that belongs to exactly one Menu.
// MenuID is stored as menu_id but travels as "menuId" on the wire.
type Dish struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Description string  `gorm:"type:varchar(255)" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	MenuID      uint    `gorm:"not null;index" json:"menuId"`
}
