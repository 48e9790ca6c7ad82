package main

import (
	"log"
	"time"

	"restaurant_menu/internal/config"
	"restaurant_menu/internal/database"
	"restaurant_menu/internal/handlers"
	"restaurant_menu/internal/redis"
	"restaurant_menu/internal/repository"
	"restaurant_menu/internal/services"
	"restaurant_menu/pkg/telegram"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize Telegram bot client
	bot := telegram.NewClient(cfg.TelegramBotToken)

	// Initialize repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	menuService := services.NewMenuService(restaurantRepo, categoryRepo, productRepo, redisClient, time.Duration(cfg.MenuCacheTTL)*time.Second)
	cartService := services.NewCartService(productRepo, redisClient)
	userService := services.NewUserService(userRepo)
	feedbackService := services.NewFeedbackService(restaurantRepo, bot)

	// Initialize handlers
	menuHandler := handlers.NewMenuHandler(menuService)
	cartHandler := handlers.NewCartHandler(cartService)
	adminHandler := handlers.NewAdminHandler(restaurantRepo, categoryRepo, productRepo, userService, menuService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	authHandler := handlers.NewAuthHandler(userService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		// Public menu
		api.GET("/menu/:slug", menuHandler.GetMenu)
		api.GET("/products/:id", menuHandler.GetProduct)

		// Cart
		api.GET("/cart/:session_id", cartHandler.GetCart)
		api.DELETE("/cart/:session_id", cartHandler.ClearCart)
		api.POST("/cart/:session_id/items", cartHandler.AddItem)
		api.PUT("/cart/:session_id/items/:item_id", cartHandler.UpdateQuantity)
		api.DELETE("/cart/:session_id/items/:item_id", cartHandler.RemoveItem)
		api.PUT("/cart/:session_id/commission", cartHandler.SetCommission)
		api.GET("/cart/:session_id/total", cartHandler.GetTotal)

		// Feedback relay
		api.POST("/feedback", feedbackHandler.SendFeedback)

		// Admin credential check; sessions live in the hosting platform
		api.POST("/auth/login", authHandler.Login)

		// Admin back office
		admin := api.Group("/admin")
		{
			admin.POST("/restaurants", adminHandler.CreateRestaurant)
			admin.PUT("/restaurants/:id/settings", adminHandler.UpdateSettings)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)
			admin.PUT("/products/:id/recommendations", adminHandler.SetRecommendations)
			admin.POST("/kitchens", adminHandler.CreateKitchen)
			admin.GET("/kitchens", adminHandler.ListKitchens)
			admin.DELETE("/kitchens/:id", adminHandler.DeleteKitchen)
			admin.POST("/users", adminHandler.CreateUser)
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id/password", adminHandler.UpdateUserPassword)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
