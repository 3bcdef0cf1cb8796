package main

import (
	"Burger-App-Backend/cmd/config"
	migration "Burger-App-Backend/cmd/database/migrate"
	"Burger-App-Backend/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("app setup failed: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "5000"
	}
	log.Fatal(app.Listen(":" + port))
}
