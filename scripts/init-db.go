package main

import (
	"fmt"
	"log"

	"furniture_store/internal/config"
	"furniture_store/internal/database"
	"furniture_store/internal/migrations"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Recreate the schema and seed defaults
	if err := migrations.RunMigrations(db, cfg); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}
