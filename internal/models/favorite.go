package models

import "time"

// Favorite is a user's saved reference to an externally-sourced recipe.
// RecipeName is captured at favorite time and never refreshed.
// Each user can hold at most one favorite per recipe id.
type Favorite struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_recipe" json:"user_id"`
	RecipeID   int       `gorm:"not null;uniqueIndex:idx_user_recipe" json:"recipe_id"`
	RecipeName string    `json:"recipe_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName pins the table name so migrations stay stable.
func (Favorite) TableName() string {
	return "favorites"
}
