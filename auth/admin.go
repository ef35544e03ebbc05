package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin handles POST /auth/admin/login.
func AdminLogin(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid input: " + err.Error(), "error": err.Error()})
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"status": 401, "message": "Invalid credentials", "error": "invalid credentials"})
				return
			}
			logger.Error().Err(err).Msg("admin lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		if !admin.Approved {
			c.JSON(http.StatusUnauthorized, gin.H{"status": 401, "message": "Account not approved", "error": "not approved"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": 401, "message": "Invalid credentials", "error": "invalid credentials"})
			return
		}

		token, err := issueAdminToken(admin, jwtSecret)
		if err != nil {
			logger.Error().Err(err).Msg("token generation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Token generation failed", "error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Login successful", "data": gin.H{
			"token": token,
			"admin": admin,
		}})
	}
}

func issueAdminToken(admin models.Admin, secret string) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"role":     "admin",
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// EnsureSeedAdmin upserts the bootstrap admin account from the
// environment so a fresh deploy can log in. No-op when unset.
func EnsureSeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.Admin{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Approved:     true,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error
}
