package admincontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
)

func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Find(&admins).Error; err != nil {
			logger.Error().Err(err).Msg("failed to fetch admins")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to fetch admins", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Admins fetched", "data": admins})
	}
}
