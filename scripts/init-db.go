package main

import (
	"encoding/json"
	"fmt"
	"log"

	"restaurant_menu/internal/config"
	"restaurant_menu/internal/database"
	"restaurant_menu/internal/migrations"
	"restaurant_menu/internal/models"
	"restaurant_menu/internal/options"
	"restaurant_menu/internal/repository"

	"github.com/google/uuid"
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

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	restaurantRepo := repository.NewRestaurantRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Check if demo restaurant already exists
	if existing, err := restaurantRepo.GetBySlug("demo-kitchen"); err == nil && existing != nil {
		fmt.Println("Demo restaurant already exists")
		return
	}

	fmt.Println("Creating demo restaurant...")
	restaurant := &models.Restaurant{
		ID:                   uuid.NewString(),
		Slug:                 "demo-kitchen",
		Name:                 "Demo Kitchen",
		Theme:                string(models.ThemeOne),
		CommissionPercentage: 10,
	}
	if err := restaurantRepo.Create(restaurant); err != nil {
		log.Fatal("Failed to create demo restaurant:", err)
	}

	category := &models.Category{
		ID:           uuid.NewString(),
		RestaurantID: restaurant.ID,
		NameEn:       "Mains",
		NameRu:       "Основные блюда",
		NameKz:       "Негізгі тағамдар",
	}
	if err := categoryRepo.Create(category); err != nil {
		log.Fatal("Failed to create demo category:", err)
	}

	// A product with grouped options: required size plus free-count add-ons.
	grouped, _ := json.Marshal([]options.OptionGroup{
		{
			Name: "Size",
			Type: options.Single,
			Choices: []options.Choice{
				{Name: "S", Price: 0},
				{Name: "M", Price: 500},
				{Name: "L", Price: 1000},
			},
		},
		{
			Name: "Add-ons",
			Type: options.Multiple,
			Choices: []options.Choice{
				{Name: "Cheese", Price: 300},
				{Name: "Bacon", Price: 400},
			},
		},
	})

	burger := &models.Product{
		ID:           uuid.NewString(),
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
		NameEn:       "Burger",
		NameRu:       "Бургер",
		NameKz:       "Бургер",
		Price:        1500,
		Options:      grouped,
		IsAvailable:  true,
	}
	if err := productRepo.Create(burger); err != nil {
		log.Fatal("Failed to create demo product:", err)
	}

	// A product still carrying the legacy flat options shape.
	legacy, _ := json.Marshal([]options.FlatOption{
		{Name: "Extra shot", Price: 200},
		{Name: "Oat milk", Price: 150},
	})

	coffee := &models.Product{
		ID:           uuid.NewString(),
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
		NameEn:       "Coffee",
		NameRu:       "Кофе",
		NameKz:       "Кофе",
		Price:        900,
		Options:      legacy,
		IsAvailable:  true,
	}
	if err := productRepo.Create(coffee); err != nil {
		log.Fatal("Failed to create demo product:", err)
	}

	// Pitch the coffee on the burger's detail page.
	if err := productRepo.ReplaceRecommendations(burger.ID, []string{coffee.ID}); err != nil {
		log.Fatal("Failed to create demo recommendation:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}
