package ottcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
)

// DeleteService handles DELETE /Ottservice/:id.
func DeleteService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid service ID", "error": "invalid id"})
			return
		}

		result := db.Delete(&models.OttService{}, id)
		if result.Error != nil {
			logger.Error().Err(result.Error).Int("id", id).Msg("service delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to delete service", "error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"status": 404, "message": "Service not found", "error": "not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Service deleted"})
	}
}
