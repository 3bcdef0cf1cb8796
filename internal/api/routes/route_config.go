package routes

import (
	"Burger-App-Backend/internal/api/handlers"
	"Burger-App-Backend/internal/middleware"
	"Burger-App-Backend/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App          *fiber.App
	UserHandler  handlers.UserHandler
	MenuHandler  handlers.MenuHandler
	CartHandler  handlers.CartHandler
	OrderHandler handlers.OrderHandler
	AdminHandler handlers.AdminHandler
	Middleware   middleware.Middleware
	Sessions     session.Store
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Menu()
	c.Cart()
	c.Orders()
	c.Admin()
}

func (c *Config) Auth() {
	c.App.Post("/register", c.UserHandler.Register)
	c.App.Post("/verify", c.UserHandler.Verify)
	c.App.Post("/login", c.UserHandler.Login)
	c.App.Post("/logout", c.Middleware.SessionMiddleware(c.Sessions), c.UserHandler.Logout)
	c.App.Get("/me", c.Middleware.SessionMiddleware(c.Sessions), c.UserHandler.Me)
}

func (c *Config) Menu() {
	c.App.Get("/menu", c.MenuHandler.ListMenu)

	// mutations are admin-only
	admin := []fiber.Handler{c.Middleware.SessionMiddleware(c.Sessions), c.Middleware.AdminMiddleware()}
	c.App.Post("/menu", append(admin, c.MenuHandler.AddMenuItem)...)
	c.App.Put("/menu/:id", append(admin, c.MenuHandler.UpdateMenuItem)...)
	c.App.Delete("/menu/:id", append(admin, c.MenuHandler.DeleteMenuItem)...)
}

func (c *Config) Cart() {
	cart := c.App.Group("/cart", c.Middleware.SessionMiddleware(c.Sessions))
	{
		cart.Post("/add", c.CartHandler.AddToCart)
		cart.Get("", c.CartHandler.ListCart)
		cart.Post("/update", c.CartHandler.UpdateQuantity)
		cart.Post("/remove", c.CartHandler.RemoveFromCart)
	}
}

func (c *Config) Orders() {
	c.App.Post("/checkout", c.Middleware.SessionMiddleware(c.Sessions), c.OrderHandler.Checkout)
	c.App.Get("/orders", c.Middleware.SessionMiddleware(c.Sessions), c.OrderHandler.GetOrders)
}

func (c *Config) Admin() {
	admin := c.App.Group("/admin", c.Middleware.SessionMiddleware(c.Sessions), c.Middleware.AdminMiddleware())
	{
		admin.Get("/stats", c.AdminHandler.GetStats)
		admin.Get("/orders", c.AdminHandler.GetRecentOrders)
		admin.Get("/chart", c.AdminHandler.GetChart)
	}
}
