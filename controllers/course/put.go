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

// UpdateCourse handles PUT /Couressection/:id. The whole form is
// resubmitted, so the row is replaced field-for-field.
func UpdateCourse(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid course ID", "error": "invalid id"})
			return
		}

		var input CourseInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid request body", "error": err.Error()})
			return
		}
		price, err := validateCourse(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": err.Error(), "error": err.Error()})
			return
		}

		var course models.Course
		if err := db.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": 404, "message": "Course not found", "error": "not found"})
				return
			}
			logger.Error().Err(err).Int("id", id).Msg("course fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to update course", "error": err.Error()})
			return
		}

		course.Name = input.Name
		course.Description = input.Description
		course.Price = price
		course.Duration = input.Duration
		course.Image = input.Image
		course.DemoVideo = input.DemoVideo
		course.Category = models.CourseCategory(input.Category)
		course.MainHeadings = input.MainHeadings

		if err := db.Save(&course).Error; err != nil {
			logger.Error().Err(err).Int("id", id).Msg("course update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to update course", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Course updated", "data": course})
	}
}
