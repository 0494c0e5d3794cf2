package server

import (
	"recipeas/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID resolves the acting identity set by AuthRequired.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	uid, ok := c.Locals("userID").(uint)
	return uid, ok
}

// requireOwner is the central ownership check run before mutations on
// owned resources. It rejects anonymous callers and callers whose identity
// does not match the resource owner.
func requireOwner(c *fiber.Ctx, resourceOwnerID uint) error {
	uid, ok := currentUserID(c)
	if !ok {
		return models.NewUnauthorizedError("Authorization required")
	}
	if uid != resourceOwnerID {
		return models.NewUnauthorizedError("You do not own this resource")
	}
	return nil
}

// respondAppError renders an AppError with its mapped HTTP status.
func respondAppError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
