package main

import (
	"log"
	"time"

	"furniture_store/internal/config"
	"furniture_store/internal/database"
	"furniture_store/internal/handlers"
	"furniture_store/internal/history"
	"furniture_store/internal/middleware"
	"furniture_store/internal/migrations"
	"furniture_store/internal/redis"
	"furniture_store/internal/repository"
	"furniture_store/internal/services"
	"furniture_store/pkg/notify"

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

	// Seed the default admin and catalog if missing
	if err := migrations.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize notification client (disabled when no URL is configured)
	notifyClient := notify.NewClient(cfg.NotifyAPIURL, cfg.NotifyUsername, cfg.NotifyPassword)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	actionLog := history.NewLog()
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(productRepo, categoryRepo)
	reviewService := services.NewReviewService(reviewRepo, productRepo)
	cartService := services.NewCartService(redisClient, productRepo, time.Duration(cfg.CartTTL)*time.Second)
	orderService := services.NewOrderService(orderRepo, productRepo, userRepo, actionLog, notifyClient)

	// Initialize handlers
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	authHandler := handlers.NewAuthHandler(userService, redisClient, sessionTTL)
	catalogHandler := handlers.NewCatalogHandler(catalogService, reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, cartService)
	adminHandler := handlers.NewAdminHandler(catalogService, userService, orderService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		// Public storefront
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/categories", catalogHandler.ListCategories)
		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)
		api.GET("/products/:id/reviews", catalogHandler.ListReviews)

		// Authenticated customer surface
		auth := api.Group("")
		auth.Use(middleware.Auth(redisClient))
		{
			auth.POST("/auth/logout", authHandler.Logout)
			auth.GET("/auth/me", authHandler.Me)
			auth.PUT("/auth/me", authHandler.UpdateMe)

			auth.POST("/products/:id/reviews", catalogHandler.AddReview)
			auth.DELETE("/reviews/:review_id", catalogHandler.DeleteReview)

			auth.GET("/cart", cartHandler.GetCart)
			auth.POST("/cart/items", cartHandler.AddItem)
			auth.PUT("/cart/items/:product_id", cartHandler.UpdateItem)
			auth.DELETE("/cart/items/:product_id", cartHandler.RemoveItem)
			auth.DELETE("/cart", cartHandler.ClearCart)

			auth.POST("/checkout", orderHandler.Checkout)
			auth.GET("/orders", orderHandler.ListMyOrders)
			auth.GET("/orders/:id", orderHandler.GetMyOrder)
			auth.POST("/orders/:id/cancel", orderHandler.CancelOrder)
			auth.POST("/orders/:id/reorder", orderHandler.Reorder)
		}

		// Admin back-office
		admin := api.Group("/admin")
		admin.Use(middleware.Auth(redisClient), middleware.RequireAdmin())
		{
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)

			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/history", adminHandler.OrderHistory)
			admin.POST("/orders/history/:entry_id/undo", adminHandler.UndoOrderAction)
			admin.GET("/orders/:id", adminHandler.GetOrder)
			admin.POST("/orders/:id/actions", adminHandler.ApplyOrderAction)
			admin.POST("/orders/:id/lock", adminHandler.ToggleOrderLock)
			admin.DELETE("/orders/:id", adminHandler.DeleteOrder)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
