package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"techstore-server/services"
)

// parseDateRange reads start/end query params as YYYY-MM-DD. Both bounds
// are inclusive.
func parseDateRange(c *gin.Context) (services.DateRange, bool) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
		return services.DateRange{}, false
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD"})
		return services.DateRange{}, false
	}
	return services.DateRange{Start: start, End: end}, true
}

func StatsRevenueByCard(c *gin.Context) {
	out, err := Reports.RevenueByCard()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue_by_card": out})
}

func StatsTopCustomers(c *gin.Context) {
	out, err := Reports.TopCustomers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"top_customers": out})
}

func StatsProductCounts(c *gin.Context) {
	dates, ok := parseDateRange(c)
	if !ok {
		return
	}
	out, err := Reports.ProductTransactionCounts(dates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_counts": out})
}

func StatsBestReach(c *gin.Context) {
	dates, ok := parseDateRange(c)
	if !ok {
		return
	}
	out, err := Reports.BestSellingByReach(dates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"best_selling": out})
}

func StatsMaxTransactionByCard(c *gin.Context) {
	dates, ok := parseDateRange(c)
	if !ok {
		return
	}
	out, err := Reports.MaxTransactionByCard(dates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"max_transaction_by_card": out})
}

func StatsCategoryAverages(c *gin.Context) {
	dates, ok := parseDateRange(c)
	if !ok {
		return
	}
	out, err := Reports.CategoryAverages(dates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category_averages": out})
}
