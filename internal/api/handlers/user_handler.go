package handlers

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/internal/api/presenters"
	"Burger-App-Backend/pkg/session"
	"Burger-App-Backend/pkg/user"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Verify(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		sessions    session.Store
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, sessions session.Store, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		sessions:    sessions,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.userService.Register(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRegister)
}

func (h *userHandler) Verify(c *fiber.Ctx) error {
	req := new(domain.VerifyRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.userService.Verify(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedVerify, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVerify)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest, err)
	}

	projection, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedLogin, err)
	}

	token, err := h.sessions.Create(c.Context(), session.Data{
		UserID: projection.ID,
		Role:   projection.Role,
	})
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedLogin, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Expires:  time.Now().Add(session.DefaultTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return presenters.SuccessResponse(c, domain.LoginResponse{
		Message: "Login successful",
		User:    projection,
	}, fiber.StatusOK, "")
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("session_token").(string)
	if token != "" {
		if err := h.sessions.Destroy(c.Context(), token); err != nil {
			return presenters.ErrorResponse(c, domain.MessageFailedLogout, err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)

	return presenters.SuccessResponse(c, domain.MeResponse{
		UserID: userID,
		Role:   role,
	}, fiber.StatusOK, "")
}
