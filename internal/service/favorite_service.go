package service

import (
	"context"
	"strings"

	"recipeas/internal/gateway"
	"recipeas/internal/models"
	"recipeas/internal/repository"
)

// FavoriteService manages a user's saved recipes.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	recipes      gateway.RecipeGateway
}

// NewFavoriteService returns a FavoriteService backed by the given
// repository and recipe gateway.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, recipes gateway.RecipeGateway) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, recipes: recipes}
}

// Toggle favorites or unfavorites a recipe for the acting user. When the
// caller supplies no display name, the name is fetched from the recipe
// gateway once, only if the toggle would insert; a gateway failure then
// surfaces to the caller instead of storing a nameless favorite.
func (s *FavoriteService) Toggle(ctx context.Context, userID uint, recipeID int, recipeName string) (repository.ToggleResult, error) {
	if recipeID <= 0 {
		return "", models.NewValidationError("A recipe id is required")
	}

	name := strings.TrimSpace(recipeName)
	if name == "" {
		exists, err := s.favoriteRepo.Exists(ctx, userID, recipeID)
		if err != nil {
			return "", err
		}
		// A removal needs no name; only look one up for an insert.
		if !exists {
			summary, err := s.recipes.GetRecipe(ctx, recipeID)
			if err != nil {
				return "", err
			}
			name = summary.Title
		}
	}

	return s.favoriteRepo.Toggle(ctx, userID, recipeID, name)
}

// List returns the user's favorites in insertion order.
func (s *FavoriteService) List(ctx context.Context, userID uint) ([]models.Favorite, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}
