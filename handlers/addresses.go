package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techstore-server/models"
)

// GetShippingAddresses lists the logged-in customer's addresses
func GetShippingAddresses(c *gin.Context) {
	addresses, err := Directory.ListShippingAddresses(c.GetInt("cid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// AddShippingAddress stores a new labeled address for the customer
func AddShippingAddress(c *gin.Context) {
	var req struct {
		SAName  string `json:"saname" binding:"required"`
		Street  string `json:"street" binding:"required"`
		SNumber string `json:"snumber" binding:"required"`
		City    string `json:"city" binding:"required"`
		Zip     string `json:"zip" binding:"required"`
		State   string `json:"state" binding:"required"`
		Country string `json:"country" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address := models.ShippingAddress{
		SAName:  req.SAName,
		Street:  req.Street,
		SNumber: req.SNumber,
		City:    req.City,
		Zip:     req.Zip,
		State:   req.State,
		Country: req.Country,
		CID:     c.GetInt("cid"),
	}
	if err := Directory.AddShippingAddress(address); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Shipping address added successfully"})
}
