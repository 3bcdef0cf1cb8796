package handlers

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/internal/api/presenters"
	"Burger-App-Backend/pkg/cart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		AddToCart(c *fiber.Ctx) error
		ListCart(c *fiber.Ctx) error
		UpdateQuantity(c *fiber.Ctx) error
		RemoveFromCart(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *cartHandler) AddToCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	req := new(domain.AddToCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.cartService.AddToCart(c.Context(), userID, *req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddToCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAddToCart)
}

func (h *cartHandler) ListCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	entries, err := h.cartService.ListCart(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedListCart, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, "")
}

func (h *cartHandler) UpdateQuantity(c *fiber.Ctx) error {
	req := new(domain.UpdateCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.cartService.UpdateQuantity(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCart)
}

func (h *cartHandler) RemoveFromCart(c *fiber.Ctx) error {
	req := new(domain.RemoveCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.cartService.RemoveFromCart(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedRemoveCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCart)
}
