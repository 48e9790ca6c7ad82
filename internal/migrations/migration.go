package migrations

import (
	"log"

	"restaurant_menu/internal/models"
	"restaurant_menu/internal/repository"
	"restaurant_menu/internal/services"

	"gorm.io/gorm"
)

// RunMigrations creates the schema and the default super admin account.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Restaurant{},
		&models.Kitchen{},
		&models.Category{},
		&models.Product{},
		&models.ProductRecommendation{},
		&models.User{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func createDefaultData(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	// Check if super admin already exists
	existing, err := userRepo.GetByEmail("admin@example.com")
	if err == nil && existing != nil {
		log.Println("Super admin user already exists")
		return nil
	}

	log.Println("Creating super admin user...")
	superAdmin := &models.User{
		Email:    "admin@example.com",
		Role:     string(models.SuperAdmin),
		IsActive: true,
	}

	if err := userService.CreateUser(superAdmin, "admin123"); err != nil {
		return err
	}

	log.Println("Super admin user created successfully")
	log.Println("Email: admin@example.com")
	log.Println("Password: admin123")
	return nil
}
