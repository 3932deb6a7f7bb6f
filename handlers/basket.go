package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"techstore-server/models"
	"techstore-server/services"
)

// currentBasket resolves the session's open basket, creating one on first
// touch and recording the new id in the session store.
func currentBasket(c *gin.Context) (models.Basket, error) {
	cid := c.GetInt("cid")
	sid := c.GetString("sid")

	basket, created, err := Baskets.GetOrCreateOpenBasket(cid, sessions.BasketID(sid))
	if err != nil {
		return models.Basket{}, err
	}
	if created {
		sessions.SetBasket(sid, basket.BID)
	}
	return basket, nil
}

// GetBasket returns the open basket's lines and total
func GetBasket(c *gin.Context) {
	basket, err := currentBasket(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	lines, err := Baskets.ListItems(basket.BID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"basket_id": basket.BID,
		"items":     lines,
		"total":     services.BasketTotal(lines),
	})
}

// AddToBasket puts a product into the session's open basket
func AddToBasket(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id" binding:"required"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	basket, err := currentBasket(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result, err := Baskets.AddProduct(basket.BID, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "Added product to basket"
	if result.Merged {
		message = fmt.Sprintf("Updated quantity to %d", result.Item.Quantity)
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   message,
		"basket_id": basket.BID,
		"item":      result.Item,
	})
}
