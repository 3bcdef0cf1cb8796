package handlers

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/internal/api/presenters"
	"Burger-App-Backend/pkg/menu"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		ListMenu(c *fiber.Ctx) error
		AddMenuItem(c *fiber.Ctx) error
		UpdateMenuItem(c *fiber.Ctx) error
		DeleteMenuItem(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) ListMenu(c *fiber.Ctx) error {
	items, err := h.menuService.ListMenu(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedListMenu, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, "")
}

func (h *menuHandler) AddMenuItem(c *fiber.Ctx) error {
	req := new(domain.AddMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.menuService.AddMenuItem(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddMenu, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddMenu)
}

func (h *menuHandler) UpdateMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	// image is optional on update; the column stays untouched without one
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.menuService.UpdateMenuItem(c.Context(), itemID, *req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateMenu, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMenu)
}

func (h *menuHandler) DeleteMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.menuService.DeleteMenuItem(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteMenu, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMenu)
}
