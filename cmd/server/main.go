package main

import (
	"log"
	"time"

	"order_kiosk/internal/config"
	"order_kiosk/internal/database"
	"order_kiosk/internal/handlers"
	"order_kiosk/internal/migrations"
	"order_kiosk/internal/redis"
	"order_kiosk/internal/repository"
	"order_kiosk/internal/services"
	"order_kiosk/pkg/whatsapp"

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
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize WhatsApp client
	whatsappClient := whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword, cfg.WhatsAppPath)

	// Initialize repositories
	businessRepo := repository.NewBusinessRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db, businessRepo, customerRepo)

	// Initialize services
	catalogService := services.NewCatalogService(productRepo, redisClient, time.Duration(cfg.CatalogCacheTTL)*time.Second)
	notificationService := services.NewNotificationService(whatsappClient, cfg.NotifyQueueSize)
	orderService := services.NewOrderService(orderRepo, businessRepo, catalogService, notificationService)

	notificationService.Start()
	defer notificationService.Stop()

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/businesses/:business_id/products", catalogHandler.ListProducts)
		api.GET("/businesses/:business_id/products/:product_id", catalogHandler.GetProduct)

		api.POST("/businesses/:business_id/orders", orderHandler.CreateOrder)
		api.GET("/businesses/:business_id/orders", orderHandler.ListOrders)
		api.GET("/businesses/:business_id/orders/:order_id", orderHandler.GetOrder)

		api.PATCH("/orders/:order_id/status", orderHandler.UpdateStatus)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
