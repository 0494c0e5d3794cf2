package server

import (
	"strconv"

	"recipeas/internal/models"

	"github.com/gofiber/fiber/v2"
)

// BrowseRecipes handles GET /api/recipes. Without filters it returns a
// default selection from the external API.
func (s *Server) BrowseRecipes(c *fiber.Ctx) error {
	criteria := models.SearchCriteria{
		Query:  c.Query("q"),
		Number: c.QueryInt("number", 20),
	}

	recipes, err := s.recipes.Search(c.Context(), criteria)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"recipes": recipes})
}

// SearchRecipes handles GET /api/recipes/search with diet, cuisine and
// included-ingredients filters.
func (s *Server) SearchRecipes(c *fiber.Ctx) error {
	criteria := models.SearchCriteria{
		Query:              c.Query("q"),
		Diet:               c.Query("diet"),
		Cuisine:            c.Query("cuisine"),
		IncludeIngredients: c.Query("ingredients"),
		Number:             c.QueryInt("number", 20),
	}

	recipes, err := s.recipes.Search(c.Context(), criteria)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"recipes": recipes})
}

// SearchIngredients handles GET /api/recipes/ingredients/search. The
// response envelope matches the shape the frontend autocomplete consumes.
func (s *Server) SearchIngredients(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "A name query parameter is required",
		})
	}

	hits, err := s.recipes.SearchIngredients(c.Context(), name)
	if err != nil {
		return c.Status(models.StatusForError(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"result": fiber.Map{
			"search_results": hits,
		},
	})
}

// GetRecipe handles GET /api/recipes/:id
func (s *Server) GetRecipe(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid recipe id"))
	}

	recipe, err := s.recipes.GetRecipe(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"recipe": recipe})
}
