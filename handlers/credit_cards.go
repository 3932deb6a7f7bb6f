package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"techstore-server/models"
)

// GetCreditCards lists the logged-in customer's cards
func GetCreditCards(c *gin.Context) {
	cards, err := Directory.ListCreditCards(c.GetInt("cid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

// AddCreditCard stores a new card under the logged-in customer
func AddCreditCard(c *gin.Context) {
	var req struct {
		CCNumber   string `json:"ccnumber" binding:"required"`
		SecNumber  string `json:"secnumber" binding:"required"`
		OwnerName  string `json:"ownername" binding:"required"`
		CCType     string `json:"cctype" binding:"required"`
		BilAddress string `json:"biladdress" binding:"required"`
		ExpDate    string `json:"expdate" binding:"required"` // YYYY-MM-DD
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expDate, err := time.Parse("2006-01-02", req.ExpDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expdate must be YYYY-MM-DD"})
		return
	}

	card := models.CreditCard{
		CCNumber:   req.CCNumber,
		SecNumber:  req.SecNumber,
		OwnerName:  req.OwnerName,
		CCType:     req.CCType,
		BilAddress: req.BilAddress,
		ExpDate:    expDate,
		CID:        c.GetInt("cid"),
	}
	if err := Directory.AddCreditCard(card); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Credit card added successfully"})
}
