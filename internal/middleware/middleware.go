package middleware

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/internal/api/presenters"
	"Burger-App-Backend/internal/utils"
	"Burger-App-Backend/pkg/session"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		SessionMiddleware(store session.Store) fiber.Handler
		AdminMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	origin := utils.GetConfig("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowCredentials: true,
	})
}

// SessionMiddleware resolves the session cookie against the store and puts
// user_id and role into request locals.
func (m *middleware) SessionMiddleware(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return presenters.ErrorResponse(c, domain.MessageFailedSession, domain.ErrUnauthorized)
		}

		data, err := store.Get(c.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				return presenters.ErrorResponse(c, domain.MessageFailedSession, domain.ErrUnauthorized)
			}
			return presenters.ErrorResponse(c, domain.MessageFailedSession, err)
		}

		c.Locals("user_id", data.UserID)
		c.Locals("role", data.Role)
		c.Locals("session_token", token)
		return c.Next()
	}
}

// AdminMiddleware must run after SessionMiddleware.
func (m *middleware) AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != domain.RoleAdmin {
			return presenters.ErrorResponse(c, domain.MessageFailedSession, domain.ErrForbidden)
		}
		return c.Next()
	}
}
