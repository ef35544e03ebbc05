package coursecontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
)

// GetCourses handles GET /Couressection, optionally filtered by
// ?category=.
func GetCourses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var courses []models.Course
		if err := query.Find(&courses).Error; err != nil {
			logger.Error().Err(err).Msg("course list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Courses fetched", "data": courses})
	}
}

// GetCourseByID handles GET /Couressection/:id.
func GetCourseByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid course ID", "error": "invalid id"})
			return
		}

		var course models.Course
		if err := db.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": 404, "message": "Course not found", "error": "not found"})
				return
			}
			logger.Error().Err(err).Int("id", id).Msg("course fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Course fetched", "data": course})
	}
}
