package ottcontroller

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
	"github.com/ijasahamedstr/buycourse.lk-sub000/plans"
	"github.com/ijasahamedstr/buycourse.lk-sub000/validate"
)

// ServiceInput accepts both the canonical plan list and the two legacy
// shapes older admin builds still submit. Whatever arrives is normalized
// before it touches the row.
type ServiceInput struct {
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	Category           string           `json:"category"`
	Price              json.RawMessage  `json:"price"`
	DiscountedPrice    json.RawMessage  `json:"discountedPrice"`
	Images             []string         `json:"images"`
	AccessLicenseTypes []string         `json:"accessLicenseTypes"`
	VideoQuality       string           `json:"videoQuality"`
	Stock              string           `json:"stock"`
	Plans              []plans.PlanItem `json:"plans"`
	PlanDurations      json.RawMessage  `json:"planDurations"`
	MainHeadings       json.RawMessage  `json:"mainHeadings"`
}

func validateService(in ServiceInput) (price float64, discounted *float64, err error) {
	if err = validate.NotBlank("name", in.Name); err != nil {
		return
	}
	if err = validate.NotBlank("description", in.Description); err != nil {
		return
	}
	if err = validate.NotBlank("category", in.Category); err != nil {
		return
	}
	p, err := validate.RawPrice("price", in.Price, false)
	if err != nil {
		return
	}
	price = *p
	discounted, err = validate.RawPrice("discountedPrice", in.DiscountedPrice, true)
	if err != nil {
		return
	}
	if err = validate.UniqueNonEmpty("images", in.Images); err != nil {
		return
	}
	for _, img := range in.Images {
		if err = validate.ImageURL("images", img); err != nil {
			return
		}
	}
	if err = validate.UniqueNonEmpty("accessLicenseTypes", in.AccessLicenseTypes); err != nil {
		return
	}
	return price, discounted, nil
}

// resolvePlans produces the canonical plan list for a submission. A
// directly-submitted canonical list is re-run through the normalizer so
// blank durations and garbage prices are cleaned the same way legacy
// input is.
func resolvePlans(in ServiceInput) models.PlanList {
	if len(in.Plans) > 0 {
		raw, err := json.Marshal(in.Plans)
		if err != nil {
			return nil
		}
		return models.PlanList(plans.Normalize(in.Stock, raw, nil))
	}
	return models.PlanList(plans.Normalize(in.Stock, in.PlanDurations, in.MainHeadings))
}

// CreateService handles POST /Ottservice.
func CreateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		svc := models.OttService{
			Name:               input.Name,
			Description:        input.Description,
			Category:           input.Category,
			Price:              price,
			DiscountedPrice:    discounted,
			Images:             models.StringList(input.Images),
			AccessLicenseTypes: models.StringList(input.AccessLicenseTypes),
			VideoQuality:       input.VideoQuality,
			Stock:              stockValue(input.Stock),
			Plans:              resolvePlans(input),
			LegacyPlanData:     models.RawJSON(input.PlanDurations),
			LegacyHeadingData:  models.RawJSON(input.MainHeadings),
		}
		if err := db.Create(&svc).Error; err != nil {
			logger.Error().Err(err).Msg("service create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to create service", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": 201, "message": "Service created", "data": serviceView(svc)})
	}
}

func stockValue(s string) string {
	if s == plans.StockOut {
		return plans.StockOut
	}
	return plans.StockIn
}
