package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func parseAdminToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// RequireAdmin accepts either the service API key or a valid admin JWT,
// so both the back-office dashboard and scripted tooling can call the
// admin surface.
func RequireAdmin(apiKey, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey != "" && c.GetHeader("X-API-KEY") == apiKey {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString != "" {
			if claims, err := parseAdminToken(tokenString, jwtSecret); err == nil {
				if email, ok := claims["email"].(string); ok {
					c.Set("admin_email", email)
				}
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"status": 401, "message": "Admin credentials required", "error": "unauthorized"})
		c.Abort()
	}
}
