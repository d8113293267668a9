package handlers

import (
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/dto"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService  *services.AuthService
	tokenService *services.TokenService
}

func NewAuthHandler(authService *services.AuthService, tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{authService: authService, tokenService: tokenService}
}

// Token implements the password grant: form fields username/password in,
// bearer token out. Every failure is the same 401.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "could not validate credentials",
		})
	}

	token, expiresAt, err := h.tokenService.Issue(user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	middleware.LoggerFromContext(c).Info("access token issued", "user_id", user.ID)

	return c.JSON(dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// VerifyToken reports whether the authenticated user carries every permission
// named by the repeated "action" query parameter.
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	// The route runs the JWT guard and CurrentUser first, so the user is
	// always present here.
	user := middleware.UserFromContext(c)

	var actions []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("action") {
		if action := string(raw); action != "" {
			actions = append(actions, action)
		}
	}

	if missing := h.authService.MissingPermissions(user, actions); len(missing) > 0 {
		return c.JSON(dto.VerifyTokenResponse{
			Valid:  false,
			Reason: fmt.Sprintf("Missing permission(s): %s", strings.Join(missing, ", ")),
		})
	}

	return c.JSON(dto.VerifyTokenResponse{Valid: true})
}
