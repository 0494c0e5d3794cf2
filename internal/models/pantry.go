package models

import "time"

// PantryItem is a free-text ingredient a user has on hand. Duplicate names
// per user are allowed; listing is insertion order.
type PantryItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	IngredientName string    `gorm:"not null" json:"ingredient_name"`
	CreatedAt      time.Time `json:"created_at"`
}
