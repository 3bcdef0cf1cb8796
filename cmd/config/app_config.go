package config

import (
	"Burger-App-Backend/internal/api/handlers"
	"Burger-App-Backend/internal/api/routes"
	"Burger-App-Backend/internal/middleware"
	"Burger-App-Backend/internal/utils"
	"Burger-App-Backend/internal/utils/mailing"
	"Burger-App-Backend/internal/utils/storage"
	"Burger-App-Backend/pkg/cart"
	"Burger-App-Backend/pkg/menu"
	"Burger-App-Backend/pkg/order"
	"Burger-App-Backend/pkg/session"
	"Burger-App-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// image storage: local uploads directory unless an S3 bucket is set
	var uploads storage.Storage
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		uploads, err = storage.NewAwsS3()
		if err != nil {
			return nil, err
		}
	} else {
		uploadDir := utils.GetConfig("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "uploads"
		}
		uploads = storage.NewLocalStorage(uploadDir, utils.GetConfig("BACKEND_URL"))
		app.Static("/uploads", uploadDir)
	}

	// session store: in-memory unless a Redis address is set
	var sessions session.Store
	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		sessions = session.NewRedisStore(client, session.DefaultTTL)
	} else {
		sessions = session.NewMemoryStore(session.DefaultTTL)
	}

	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	cartRepository := cart.NewCartRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	userService := user.NewUserService(userRepository, mailer)
	menuService := menu.NewMenuService(menuRepository, uploads)
	cartService := cart.NewCartService(cartRepository, menuRepository, uploads)
	orderService := order.NewOrderService(orderRepository, userRepository, uploads)

	// Handler
	userHandler := handlers.NewUserHandler(userService, sessions, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(orderService)

	// routes
	routesConfig := routes.Config{
		App:          app,
		UserHandler:  userHandler,
		MenuHandler:  menuHandler,
		CartHandler:  cartHandler,
		OrderHandler: orderHandler,
		AdminHandler: adminHandler,
		Middleware:   middlewares,
		Sessions:     sessions,
	}
	routesConfig.Setup()
	return app, nil
}
