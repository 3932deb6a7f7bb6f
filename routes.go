package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techstore-server/handlers"
)

// SetupRoutes registers the storefront and admin endpoints.
func SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "techstore server is running",
		})
	})

	// Admin authentication (no auth required)
	router.POST("/admin/signup", handlers.AdminSignup)
	router.POST("/admin/login", handlers.AdminLogin)

	// Sales statistics (admin token required)
	stats := router.Group("/admin/stats")
	stats.Use(handlers.AdminMiddleware())
	{
		stats.GET("/revenue-by-card", handlers.StatsRevenueByCard)
		stats.GET("/top-customers", handlers.StatsTopCustomers)
		stats.GET("/product-counts", handlers.StatsProductCounts)
		stats.GET("/best-reach", handlers.StatsBestReach)
		stats.GET("/max-transaction-by-card", handlers.StatsMaxTransactionByCard)
		stats.GET("/category-averages", handlers.StatsCategoryAverages)
	}

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterCustomer)
			auth.POST("/login", handlers.LoginCustomer)
			auth.POST("/logout", handlers.AuthMiddleware(), handlers.LogoutCustomer)
		}

		// Catalog (no auth)
		api.GET("/products", handlers.GetProducts)
		api.GET("/products/:id", handlers.GetProduct)

		// Customer account surface
		account := api.Group("")
		account.Use(handlers.AuthMiddleware())
		{
			account.GET("/credit-cards", handlers.GetCreditCards)
			account.POST("/credit-cards", handlers.AddCreditCard)
			account.GET("/addresses", handlers.GetShippingAddresses)
			account.POST("/addresses", handlers.AddShippingAddress)

			account.GET("/basket", handlers.GetBasket)
			account.POST("/basket/items", handlers.AddToBasket)
			account.POST("/checkout", handlers.Checkout)
			account.GET("/transactions", handlers.GetTransactionHistory)
		}
	}
}
