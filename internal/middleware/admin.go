package middleware

import (
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired gates permission-profile administration on the role
// hierarchy. Runs after CurrentUser.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := UserFromContext(c)
		if user == nil {
			return unauthorized(c)
		}
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "invalid level of permissions",
			})
		}
		return c.Next()
	}
}
