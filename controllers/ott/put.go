package ottcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
)

// UpdateService handles PUT /Ottservice/:id. Full replace; the plan
// list is re-normalized from whatever shape the form submitted.
func UpdateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid service ID", "error": "invalid id"})
			return
		}

		var input ServiceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid request body", "error": err.Error()})
			return
		}
		price, discounted, err := validateService(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": err.Error(), "error": err.Error()})
			return
		}

		var svc models.OttService
		if err := db.First(&svc, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": 404, "message": "Service not found", "error": "not found"})
				return
			}
			logger.Error().Err(err).Int("id", id).Msg("service fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to update service", "error": err.Error()})
			return
		}

		svc.Name = input.Name
		svc.Description = input.Description
		svc.Category = input.Category
		svc.Price = price
		svc.DiscountedPrice = discounted
		svc.Images = models.StringList(input.Images)
		svc.AccessLicenseTypes = models.StringList(input.AccessLicenseTypes)
		svc.VideoQuality = input.VideoQuality
		svc.Stock = stockValue(input.Stock)
		svc.Plans = resolvePlans(input)
		svc.LegacyPlanData = models.RawJSON(input.PlanDurations)
		svc.LegacyHeadingData = models.RawJSON(input.MainHeadings)

		if err := db.Save(&svc).Error; err != nil {
			logger.Error().Err(err).Int("id", id).Msg("service update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to update service", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Service updated", "data": serviceView(svc)})
	}
}
