// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. The password field holds a bcrypt
// hash and is never serialized.
type User struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Email     string       `gorm:"unique;not null" json:"email"`
	Password  string       `gorm:"not null" json:"-"`
	FirstName string       `gorm:"not null" json:"first_name"`
	LastName  string       `gorm:"not null" json:"last_name"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Pantry    []PantryItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"pantry,omitempty"`
	Favorites []Favorite   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}
