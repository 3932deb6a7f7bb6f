package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"techstore-server/models"
	"techstore-server/services"
)

// RegisterCustomer creates a customer record. The customer picks their own
// numeric id, as in the legacy store.
func RegisterCustomer(c *gin.Context) {
	var req struct {
		CID     int    `json:"cid" binding:"required"`
		FName   string `json:"fname" binding:"required"`
		LName   string `json:"lname" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Address string `json:"address" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := Directory.GetCustomer(req.CID); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Customer id already registered"})
		return
	} else if !errors.Is(err, services.ErrNotFound) {
		respondServiceError(c, err)
		return
	}

	customer := models.Customer{
		CID:     req.CID,
		FName:   req.FName,
		LName:   req.LName,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
	}
	if err := Directory.CreateCustomer(customer); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Customer registered successfully", "customer": customer})
}

// LoginCustomer starts a session for an existing customer id. There is no
// password on customer accounts; the id lookup is the whole check.
func LoginCustomer(c *gin.Context) {
	var req struct {
		CID int `json:"cid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customer, err := Directory.GetCustomer(req.CID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid customer id"})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := generateToken(&Claims{
		CustomerID: customer.CID,
		SessionID:  uuid.New().String(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer": customer,
		"token":    token,
		"message":  "Login successful",
	})
}

// LogoutCustomer drops the session's basket reference. The basket row
// itself stays; a later login cannot see it and will start a new one.
func LogoutCustomer(c *gin.Context) {
	sessions.ClearBasket(c.GetString("sid"))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// AuthMiddleware validates customer JWT tokens
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c)
		if !ok {
			return
		}
		if claims.CustomerID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer token required"})
			c.Abort()
			return
		}
		c.Set("cid", claims.CustomerID)
		c.Set("sid", claims.SessionID)
		c.Next()
	}
}

// bearerClaims extracts and verifies the Authorization header. On failure
// it writes the 401 itself and aborts.
func bearerClaims(c *gin.Context) (*Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		c.Abort()
		return nil, false
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
		c.Abort()
		return nil, false
	}
	claims, err := parseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		c.Abort()
		return nil, false
	}
	return claims, true
}
