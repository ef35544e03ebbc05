package ottcontroller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
	"github.com/ijasahamedstr/buycourse.lk-sub000/plans"
)

// hydratePlans fills in the canonical plan list for rows written before
// normalize-on-write, using whatever legacy data the row still carries.
func hydratePlans(svc *models.OttService) {
	if len(svc.Plans) > 0 {
		return
	}
	if len(svc.LegacyPlanData) == 0 && len(svc.LegacyHeadingData) == 0 {
		return
	}
	svc.Plans = models.PlanList(plans.Normalize(
		svc.Stock,
		json.RawMessage(svc.LegacyPlanData),
		json.RawMessage(svc.LegacyHeadingData),
	))
}

// serviceView is the wire shape: the row plus the derived price range.
// When no plan carries a price the range is omitted and the service
// price field stands alone.
func serviceView(svc models.OttService) gin.H {
	view := gin.H{"service": svc}
	if min, max, ok := plans.PriceRange(svc.Plans); ok {
		view["priceRange"] = gin.H{"min": min, "max": max}
	}
	return view
}

// GetServices handles GET /Ottservice, optionally filtered by ?category=.
func GetServices(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var services []models.OttService
		if err := query.Find(&services).Error; err != nil {
			logger.Error().Err(err).Msg("service list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}

		views := make([]gin.H, 0, len(services))
		for i := range services {
			hydratePlans(&services[i])
			views = append(views, serviceView(services[i]))
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Services fetched", "data": views})
	}
}

// GetServiceByID handles GET /Ottservice/:id.
func GetServiceByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid service ID", "error": "invalid id"})
			return
		}

		var svc models.OttService
		if err := db.First(&svc, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": 404, "message": "Service not found", "error": "not found"})
				return
			}
			logger.Error().Err(err).Int("id", id).Msg("service fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}

		hydratePlans(&svc)
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Service fetched", "data": serviceView(svc)})
	}
}
