package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/dto"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserTypeHandler administers permission profiles. Routes are admin-gated in
// the router; no per-resource ownership applies here.
type UserTypeHandler struct {
	service  *services.UserTypeService
	validate *validator.Validate
}

func NewUserTypeHandler(service *services.UserTypeService) *UserTypeHandler {
	return &UserTypeHandler{service: service, validate: dto.NewValidator()}
}

func (h *UserTypeHandler) List(c *fiber.Ctx) error {
	types, err := h.service.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(types)
}

func (h *UserTypeHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badID(c)
	}

	userType, err := h.service.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUserTypeNotFound) {
			return notFound(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(userType)
}

func (h *UserTypeHandler) Create(c *fiber.Ctx) error {
	var req dto.UserTypeRequest
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

	userType, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrTitleTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(userType)
}

func (h *UserTypeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badID(c)
	}

	var req dto.UserTypeRequest
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

	userType, err := h.service.Update(uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserTypeNotFound):
			return notFound(c, err)
		case errors.Is(err, services.ErrTitleTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(userType)
}

func (h *UserTypeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badID(c)
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrUserTypeNotFound) {
			return notFound(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"message": "User type deleted successfully"})
}
