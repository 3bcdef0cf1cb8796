package migration

import (
	"Burger-App-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Migrate bootstraps the schema idempotently; existing tables are left as
// they are.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("migrating users: %w", err)
	}
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		return fmt.Errorf("migrating menu: %w", err)
	}
	if err := db.AutoMigrate(&entities.CartEntry{}); err != nil {
		return fmt.Errorf("migrating cart: %w", err)
	}
	if err := db.AutoMigrate(&entities.Order{}, &entities.OrderItem{}); err != nil {
		return fmt.Errorf("migrating orders: %w", err)
	}

	log.Println("Database migration complete")
	return nil
}
