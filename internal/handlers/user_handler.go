package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/dto"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/models"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validate:    dto.NewValidator(),
	}
}

// Register creates an account with the default user type. Public: the only
// write reachable without a token.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	middleware.LoggerFromContext(c).Info("user registered", "user_id", user.ID)

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user))
}

// List returns every user. There is no "only yourself" variant here: the
// read-all capability is required outright.
func (h *UserHandler) List(c *fiber.Ctx) error {
	actor := middleware.UserFromContext(c)
	if !actor.CanAll(models.VerbRead) {
		return forbidden(c)
	}

	users, err := h.userService.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(dto.NewUserListResponse(users))
}

// Me returns the authenticated user's own record; only read-own is needed.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	actor := middleware.UserFromContext(c)
	if !actor.CanOwn(models.VerbRead) {
		return forbidden(c)
	}
	return c.JSON(dto.NewUserResponse(actor))
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	actor := middleware.UserFromContext(c)
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badID(c)
	}

	if err := h.authService.Authorize(actor, models.VerbRead, uint(id)); err != nil {
		return forbidden(c)
	}

	if actor.ID == uint(id) {
		return c.JSON(dto.NewUserResponse(actor))
	}

	user, err := h.userService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	actor := middleware.UserFromContext(c)
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badID(c)
	}

	if err := h.authService.Authorize(actor, models.VerbUpdate, uint(id)); err != nil {
		return forbidden(c)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	user, err := h.userService.Update(uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, err)
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	actor := middleware.UserFromContext(c)
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badID(c)
	}

	if err := h.authService.Authorize(actor, models.VerbDelete, uint(id)); err != nil {
		return forbidden(c)
	}

	if err := h.userService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Error: true, Message: "invalid level of permissions",
	})
}

func notFound(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: err.Error(),
	})
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid id parameter",
	})
}
