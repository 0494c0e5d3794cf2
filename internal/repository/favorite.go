package repository

import (
	"context"
	"errors"

	"recipeas/internal/models"

	"gorm.io/gorm"
)

// ToggleResult reports the outcome of a favorite toggle.
type ToggleResult string

const (
	ToggleAdded   ToggleResult = "added"
	ToggleRemoved ToggleResult = "removed"
)

// FavoriteRepository defines persistence operations for favorites.
type FavoriteRepository interface {
	// Toggle removes the (userID, recipeID) favorite if present, otherwise
	// inserts one with the given cached name. The check-then-act runs inside
	// one transaction; a concurrent duplicate insert lands on the composite
	// unique index and is reported as ToggleRemoved instead of failing.
	Toggle(ctx context.Context, userID uint, recipeID int, recipeName string) (ToggleResult, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error)
	Exists(ctx context.Context, userID uint, recipeID int) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Toggle(ctx context.Context, userID uint, recipeID int, recipeName string) (ToggleResult, error) {
	var result ToggleResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Delete(&models.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			result = ToggleRemoved
			return nil
		}

		fav := models.Favorite{
			UserID:     userID,
			RecipeID:   recipeID,
			RecipeName: recipeName,
		}
		if err := tx.Create(&fav).Error; err != nil {
			return err
		}
		result = ToggleAdded
		return nil
	})

	if err != nil {
		// A concurrent duplicate request raced the insert: the favorite
		// already exists, so this request behaves like an unfavorite no-op.
		if isUniqueConstraintError(err) {
			return ToggleRemoved, nil
		}
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return "", appErr
		}
		return "", models.NewInternalError(err)
	}
	return result, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favorites).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return favorites, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID uint, recipeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
