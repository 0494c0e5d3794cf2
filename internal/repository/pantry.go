package repository

import (
	"context"

	"recipeas/internal/models"

	"gorm.io/gorm"
)

// PantryRepository defines persistence operations for pantry items.
type PantryRepository interface {
	Create(ctx context.Context, item *models.PantryItem) error
	// DeleteOwned removes the item only when it belongs to userID. A miss is
	// reported as NotFound whether the id is absent or owned by someone else.
	DeleteOwned(ctx context.Context, userID, itemID uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.PantryItem, error)
}

type pantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository returns a new PantryRepository implementation.
func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) Create(ctx context.Context, item *models.PantryItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *pantryRepository) DeleteOwned(ctx context.Context, userID, itemID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.PantryItem{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Pantry item", itemID)
	}
	return nil
}

func (r *pantryRepository) ListByUser(ctx context.Context, userID uint) ([]models.PantryItem, error) {
	var items []models.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
