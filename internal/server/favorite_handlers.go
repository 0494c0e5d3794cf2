package server

import (
	"recipeas/internal/models"
	"recipeas/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// ListFavorites handles GET /api/favorites
func (s *Server) ListFavorites(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	favorites, err := s.favoriteSvc.List(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"favorites": favorites})
}

// ToggleFavorite handles POST /api/favorites/toggle. The response always
// carries a success flag so frontend callers never see a bare error page.
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	var req struct {
		// user_id is optional and only accepted when it matches the
		// session identity; clients may omit it entirely.
		UserID     uint   `json:"user_id"`
		RecipeID   int    `json:"recipe_id"`
		RecipeName string `json:"recipe_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.UserID != 0 {
		if err := requireOwner(c, req.UserID); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "You can only change your own favorites",
			})
		}
	}

	result, err := s.favoriteSvc.Toggle(c.Context(), userID, req.RecipeID, req.RecipeName)
	if err != nil {
		return c.Status(models.StatusForError(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	message := "Recipe added to favorites"
	if result == repository.ToggleRemoved {
		message = "Recipe removed from favorites"
	}

	return c.JSON(fiber.Map{
		"success": true,
		"status":  string(result),
		"message": message,
	})
}
