package routes

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	ProviderHandler  handlers.ProviderHandler
	ReceiverHandler  handlers.ReceiverHandler
	ListingHandler   handlers.ListingHandler
	ClaimHandler     handlers.ClaimHandler
	AnalyticsHandler handlers.AnalyticsHandler
	AdminHandler     handlers.AdminHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Providers()
	c.Receivers()
	c.Listings()
	c.Claims()
	c.Analytics()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) Providers() {
	providers := c.App.Group("/api/v1/providers")
	{
		providers.Get("", c.ProviderHandler.GetProviders)
		providers.Post("", c.ProviderHandler.AddProvider)
	}
}

func (c *Config) Receivers() {
	receivers := c.App.Group("/api/v1/receivers")
	{
		receivers.Get("", c.ReceiverHandler.GetReceivers)
		receivers.Post("", c.ReceiverHandler.AddReceiver)
	}
}

func (c *Config) Listings() {
	listings := c.App.Group("/api/v1/listings")
	{
		listings.Get("/filters", c.ListingHandler.GetListingFilters)
		listings.Get("", c.ListingHandler.GetListings)
		listings.Post("", c.ListingHandler.AddListing)
	}
}

func (c *Config) Claims() {
	claims := c.App.Group("/api/v1/claims")
	{
		claims.Get("", c.ClaimHandler.GetClaims)
		claims.Post("", c.ClaimHandler.CreateClaim)
		claims.Patch("/:id/status", c.ClaimHandler.UpdateClaimStatus)
	}
}

func (c *Config) Analytics() {
	analytics := c.App.Group("/api/v1/analytics")
	{
		analytics.Get("/overview", c.AnalyticsHandler.GetOverview)
		analytics.Get("/listings-by-city", c.AnalyticsHandler.GetListingsByCity)
		analytics.Get("/food-types", c.AnalyticsHandler.GetFoodTypeDistribution)
		analytics.Get("/claims-over-time", c.AnalyticsHandler.GetClaimsOverTime)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin")
	{
		admin.Post("/migrate", c.AdminHandler.Migrate)
		admin.Post("/seed", c.AdminHandler.Seed)
		admin.Get("/export/providers.csv", c.AdminHandler.ExportProviders)
		admin.Get("/export/listings.csv", c.AdminHandler.ExportListings)
		admin.Get("/export/claims.csv", c.AdminHandler.ExportClaims)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
