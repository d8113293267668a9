package middleware

import (
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/config"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected rejects requests without a valid bearer token before any
// handler runs. Identity resolution happens afterwards in CurrentUser.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "could not validate credentials",
			})
		},
	})
}
