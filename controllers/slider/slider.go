package slidercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
	"github.com/ijasahamedstr/buycourse.lk-sub000/validate"
)

type SliderInput struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Date  string `json:"date"`
}

func validateSlider(in SliderInput) error {
	if err := validate.NotBlank("name", in.Name); err != nil {
		return err
	}
	if err := validate.NotBlank("image", in.Image); err != nil {
		return err
	}
	return validate.ImageURL("image", in.Image)
}

// CreateSlider handles POST /Slidersection.
func CreateSlider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SliderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid request body", "error": err.Error()})
			return
		}
		if err := validateSlider(input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": err.Error(), "error": err.Error()})
			return
		}

		slider := models.Slider{Name: input.Name, Image: input.Image, Date: input.Date}
		if err := db.Create(&slider).Error; err != nil {
			logger.Error().Err(err).Msg("slider create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to create slider", "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": 201, "message": "Slider created", "data": slider})
	}
}

// GetSliders handles GET /Slidersection.
func GetSliders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sliders []models.Slider
		if err := db.Order("created_at DESC").Find(&sliders).Error; err != nil {
			logger.Error().Err(err).Msg("slider list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Sliders fetched", "data": sliders})
	}
}

// GetSliderByID handles GET /Slidersection/:id.
func GetSliderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid slider ID", "error": "invalid id"})
			return
		}

		var slider models.Slider
		if err := db.First(&slider, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": 404, "message": "Slider not found", "error": "not found"})
				return
			}
			logger.Error().Err(err).Int("id", id).Msg("slider fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Slider fetched", "data": slider})
	}
}

// UpdateSlider handles PUT /Slidersection/:id.
func UpdateSlider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid slider ID", "error": "invalid id"})
			return
		}

		var input SliderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid request body", "error": err.Error()})
			return
		}
		if err := validateSlider(input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": err.Error(), "error": err.Error()})
			return
		}

		var slider models.Slider
		if err := db.First(&slider, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": 404, "message": "Slider not found", "error": "not found"})
				return
			}
			logger.Error().Err(err).Int("id", id).Msg("slider fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to update slider", "error": err.Error()})
			return
		}

		slider.Name = input.Name
		slider.Image = input.Image
		slider.Date = input.Date
		if err := db.Save(&slider).Error; err != nil {
			logger.Error().Err(err).Int("id", id).Msg("slider update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to update slider", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Slider updated", "data": slider})
	}
}

// DeleteSlider handles DELETE /Slidersection/:id.
func DeleteSlider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid slider ID", "error": "invalid id"})
			return
		}

		result := db.Delete(&models.Slider{}, id)
		if result.Error != nil {
			logger.Error().Err(result.Error).Int("id", id).Msg("slider delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to delete slider", "error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"status": 404, "message": "Slider not found", "error": "not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Slider deleted"})
	}
}
