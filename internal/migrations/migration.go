package migrations

import (
	"log"

	"furniture_store/internal/config"
	"furniture_store/internal/models"
	"furniture_store/internal/repository"
	"furniture_store/internal/services"

	"gorm.io/gorm"
)

// RunMigrations recreates the schema and seeds default data. Used by the
// init-db script; the server itself only automigrates.
func RunMigrations(db *gorm.DB, cfg *config.Config) error {
	log.Println("Running database migrations...")

	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	if err := SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// SeedDefaultData creates the default admin account and starter catalog.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Creating default data...")

	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)
	categoryRepo := repository.NewCategoryRepository(db)

	// Check if admin already exists
	existing, err := userRepo.GetByEmail(cfg.AdminEmail)
	if err == nil && existing != nil {
		log.Println("Admin user already exists")
		return nil
	}

	log.Println("Creating admin user...")
	admin := &models.User{
		Username: "admin",
		Email:    cfg.AdminEmail,
		Role:     string(models.RoleAdmin),
		IsActive: true,
	}

	err = userService.Register(admin, cfg.AdminPassword)
	if err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created successfully")
		log.Printf("Email: %s", cfg.AdminEmail)
	}

	log.Println("Creating default categories...")
	defaults := []models.Category{
		{Name: "Living Room", Description: "Sofas, coffee tables, and shelving"},
		{Name: "Bedroom", Description: "Beds, wardrobes, and nightstands"},
		{Name: "Dining", Description: "Dining tables, chairs, and sideboards"},
		{Name: "Office", Description: "Desks, office chairs, and storage"},
	}
	for i := range defaults {
		if err := categoryRepo.Create(&defaults[i]); err != nil {
			log.Printf("Warning: Failed to create category %s: %v", defaults[i].Name, err)
		}
	}

	log.Println("Default data created successfully!")
	return nil
}
