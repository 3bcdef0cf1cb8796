package handlers

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/internal/api/presenters"
	"Burger-App-Backend/pkg/order"

	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		Checkout(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
	}
)

func NewOrderHandler(orderService order.OrderService) OrderHandler {
	return &orderHandler{orderService: orderService}
}

func (h *orderHandler) Checkout(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	orderID, err := h.orderService.Checkout(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, domain.CheckoutResponse{
		Message: "Order placed",
		OrderID: orderID,
	}, fiber.StatusOK, "")
}

func (h *orderHandler) GetOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	orders, err := h.orderService.GetUserOrders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedListOrders, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK, "")
}
