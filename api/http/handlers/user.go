package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserID extracts the authenticated user ID set by the JWT middleware.
func currentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	userIDStr, _ := c.Locals("userId").(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}
	return uid, true
}
