package service

import (
	"context"
	"errors"
	"testing"

	"recipeas/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pantryRepoStub struct {
	createFn      func(context.Context, *models.PantryItem) error
	deleteOwnedFn func(context.Context, uint, uint) error
	listByUserFn  func(context.Context, uint) ([]models.PantryItem, error)
}

func (s *pantryRepoStub) Create(ctx context.Context, item *models.PantryItem) error {
	return s.createFn(ctx, item)
}
func (s *pantryRepoStub) DeleteOwned(ctx context.Context, userID, itemID uint) error {
	return s.deleteOwnedFn(ctx, userID, itemID)
}
func (s *pantryRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.PantryItem, error) {
	return s.listByUserFn(ctx, userID)
}

func noopPantryRepo() *pantryRepoStub {
	return &pantryRepoStub{
		createFn:      func(context.Context, *models.PantryItem) error { return nil },
		deleteOwnedFn: func(context.Context, uint, uint) error { return nil },
		listByUserFn:  func(context.Context, uint) ([]models.PantryItem, error) { return nil, nil },
	}
}

func TestPantryService_AddItem(t *testing.T) {
	t.Parallel()

	t.Run("blank name is rejected and nothing is stored", func(t *testing.T) {
		t.Parallel()
		repo := noopPantryRepo()
		created := false
		repo.createFn = func(context.Context, *models.PantryItem) error {
			created = true
			return nil
		}
		svc := NewPantryService(repo)
		_, err := svc.AddItem(context.Background(), 1, "   ")
		assertAppErrorCode(t, err, "VALIDATION_ERROR")
		assert.False(t, created)
	})

	t.Run("name is trimmed before storage", func(t *testing.T) {
		t.Parallel()
		repo := noopPantryRepo()
		var stored *models.PantryItem
		repo.createFn = func(_ context.Context, item *models.PantryItem) error {
			stored = item
			return nil
		}
		svc := NewPantryService(repo)
		item, err := svc.AddItem(context.Background(), 7, "  basil  ")
		require.NoError(t, err)
		assert.Equal(t, "basil", item.IngredientName)
		assert.Equal(t, uint(7), item.UserID)
		require.NotNil(t, stored)
		assert.Equal(t, "basil", stored.IngredientName)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("insert failed")
		repo := noopPantryRepo()
		repo.createFn = func(context.Context, *models.PantryItem) error { return repoErr }
		svc := NewPantryService(repo)
		_, err := svc.AddItem(context.Background(), 1, "eggs")
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestPantryService_RemoveItem(t *testing.T) {
	t.Parallel()

	repo := noopPantryRepo()
	repo.deleteOwnedFn = func(_ context.Context, userID, itemID uint) error {
		if userID != 3 || itemID != 9 {
			return models.NewNotFoundError("Pantry item", itemID)
		}
		return nil
	}
	svc := NewPantryService(repo)

	require.NoError(t, svc.RemoveItem(context.Background(), 3, 9))

	err := svc.RemoveItem(context.Background(), 4, 9)
	assertAppErrorCode(t, err, "NOT_FOUND")
}
