package config

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/api/routes"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/internal/utils"
	"FoodShare-Backend/internal/utils/storage"
	"FoodShare-Backend/pkg/analytics"
	"FoodShare-Backend/pkg/claim"
	"FoodShare-Backend/pkg/export"
	"FoodShare-Backend/pkg/listing"
	"FoodShare-Backend/pkg/provider"
	"FoodShare-Backend/pkg/receiver"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
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
	app.Use(middlewares.RequestIDMiddleware())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	providerRepository := provider.NewProviderRepository(db)
	receiverRepository := receiver.NewReceiverRepository(db)
	listingRepository := listing.NewListingRepository(db)
	claimRepository := claim.NewClaimRepository(db)
	analyticsRepository := analytics.NewAnalyticsRepository(db)
	exportRepository := export.NewExportRepository(db)

	// Service
	providerService := provider.NewProviderService(providerRepository)
	receiverService := receiver.NewReceiverService(receiverRepository)
	listingService := listing.NewListingService(listingRepository)
	claimService := claim.NewClaimService(claimRepository)
	analyticsService := analytics.NewAnalyticsService(analyticsRepository)
	exportService := export.NewExportService(exportRepository, s3)

	// Handler
	providerHandler := handlers.NewProviderHandler(providerService, validator)
	receiverHandler := handlers.NewReceiverHandler(receiverService, validator)
	listingHandler := handlers.NewListingHandler(listingService, validator)
	claimHandler := handlers.NewClaimHandler(claimService, validator)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	adminHandler := handlers.NewAdminHandler(db, exportService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		ProviderHandler:  providerHandler,
		ReceiverHandler:  receiverHandler,
		ListingHandler:   listingHandler,
		ClaimHandler:     claimHandler,
		AnalyticsHandler: analyticsHandler,
		AdminHandler:     adminHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
