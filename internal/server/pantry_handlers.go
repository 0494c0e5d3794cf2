package server

import (
	"strconv"

	"recipeas/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListPantry handles GET /api/pantry
func (s *Server) ListPantry(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	items, err := s.pantryService.ListItems(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"items": items})
}

// AddPantryItem handles POST /api/pantry
func (s *Server) AddPantryItem(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	var req struct {
		IngredientName string `json:"ingredient_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.pantryService.AddItem(c.Context(), userID, req.IngredientName)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": item})
}

// RemovePantryItem handles DELETE /api/pantry/:id. An item owned by another
// user is indistinguishable from a missing one.
func (s *Server) RemovePantryItem(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	itemID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid pantry item id"))
	}

	if err := s.pantryService.RemoveItem(c.Context(), userID, uint(itemID)); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Pantry item removed",
	})
}
