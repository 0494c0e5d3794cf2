package service

import (
	"context"
	"strings"

	"recipeas/internal/models"
	"recipeas/internal/repository"
	"recipeas/internal/validation"
)

// PantryService manages a user's pantry list.
type PantryService struct {
	pantryRepo repository.PantryRepository
}

// NewPantryService returns a PantryService backed by the given repository.
func NewPantryService(pantryRepo repository.PantryRepository) *PantryService {
	return &PantryService{pantryRepo: pantryRepo}
}

// AddItem appends an ingredient to the acting user's pantry. Blank names are
// rejected and nothing is stored.
func (s *PantryService) AddItem(ctx context.Context, userID uint, ingredientName string) (*models.PantryItem, error) {
	if err := validation.ValidateIngredientName(ingredientName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	item := &models.PantryItem{
		UserID:         userID,
		IngredientName: strings.TrimSpace(ingredientName),
	}
	if err := s.pantryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes an item the acting user owns. Items owned by other
// users look identical to missing ones.
func (s *PantryService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	return s.pantryRepo.DeleteOwned(ctx, userID, itemID)
}

// ListItems returns the user's pantry in insertion order.
func (s *PantryService) ListItems(ctx context.Context, userID uint) ([]models.PantryItem, error) {
	return s.pantryRepo.ListByUser(ctx, userID)
}
