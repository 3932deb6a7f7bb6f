package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Checkout finalizes the session's open basket against a chosen shipping
// address and credit card. On success the session's basket reference is
// cleared; the basket is closed for good.
func Checkout(c *gin.Context) {
	var req struct {
		SAName   string `json:"saname" binding:"required"`
		CCNumber string `json:"ccnumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cid := c.GetInt("cid")
	sid := c.GetString("sid")

	basketID := sessions.BasketID(sid)
	if basketID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No open basket for this session"})
		return
	}

	txn, err := Checkouts.Checkout(cid, basketID, req.SAName, req.CCNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	sessions.ClearBasket(sid)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Order placed successfully",
		"transaction": txn,
	})
}

// GetTransactionHistory lists the customer's past checkouts
func GetTransactionHistory(c *gin.Context) {
	transactions, err := Directory.ListTransactions(c.GetInt("cid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}
