package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"techstore-server/database"
	"techstore-server/services"
)

var (
	DB        *database.DB
	Directory *services.DirectoryService
	Catalog   *services.CatalogService
	Baskets   *services.BasketService
	Checkouts *services.CheckoutService
	Reports   *services.ReportService
)

// InitializeHandlers wires the handler package to the database
func InitializeHandlers(db *database.DB) {
	DB = db
	Directory = services.NewDirectoryService(db)
	Catalog = services.NewCatalogService(db)
	Baskets = services.NewBasketService(db)
	Checkouts = services.NewCheckoutService(db)
	Reports = services.NewReportService(db)
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrBasketClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmptyBasket):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
