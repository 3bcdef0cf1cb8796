package handlers

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/internal/api/presenters"
	"Burger-App-Backend/pkg/order"

	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetStats(c *fiber.Ctx) error
		GetRecentOrders(c *fiber.Ctx) error
		GetChart(c *fiber.Ctx) error
	}

	adminHandler struct {
		orderService order.OrderService
	}
)

func NewAdminHandler(orderService order.OrderService) AdminHandler {
	return &adminHandler{orderService: orderService}
}

func (h *adminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.orderService.GetAdminStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, "")
}

func (h *adminHandler) GetRecentOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetRecentOrders(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedRecentOrders, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK, "")
}

func (h *adminHandler) GetChart(c *fiber.Ctx) error {
	points, err := h.orderService.GetChart(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedChart, err)
	}

	return presenters.SuccessResponse(c, points, fiber.StatusOK, "")
}
