package handlers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"techstore-server/config"
)

// Claims represents the JWT claims
type Claims struct {
	CustomerID int    `json:"cid,omitempty"`
	SessionID  string `json:"sid,omitempty"`
	Role       string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// generateToken signs a JWT valid for 15 days
func generateToken(claims *Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(15 * 24 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
