package middleware

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/dto"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/models"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/services"
	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "current_user"

// CurrentUser resolves the live account behind the bearer token and stores it
// in the request's locals. It runs after JWTProtected, so a failure here
// means the account exists-but-is-disqualified or was deleted; both report
// the same 401 as a bad token.
func CurrentUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return unauthorized(c)
		}

		user, err := auth.CurrentActiveUser(token)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// UserFromContext returns the user stored by CurrentUser, or nil when the
// middleware did not run for this route.
func UserFromContext(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals(currentUserKey).(*models.User); ok {
		return user
	}
	return nil
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "could not validate credentials",
	})
}
