package inquirycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
	"github.com/ijasahamedstr/buycourse.lk-sub000/validate"
)

// ContactInput covers both inquiry and service-request submissions;
// the two forms are identical apart from where they land.
type ContactInput struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func validateContact(in ContactInput) error {
	if err := validate.NotBlank("name", in.Name); err != nil {
		return err
	}
	return validate.NotBlank("mobile", in.Mobile)
}

// CreateInquiry handles POST /inquiry.
func CreateInquiry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid request body", "error": err.Error()})
			return
		}
		if err := validateContact(input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": err.Error(), "error": err.Error()})
			return
		}

		inquiry := models.Inquiry{
			Name:        input.Name,
			Mobile:      input.Mobile,
			Type:        input.Type,
			Description: input.Description,
		}
		if err := db.Create(&inquiry).Error; err != nil {
			logger.Error().Err(err).Msg("inquiry create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": 201, "message": "Inquiry submitted", "data": inquiry})
	}
}

// GetInquiries handles GET /inquiry (admin list).
func GetInquiries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inquiries []models.Inquiry
		if err := db.Order("created_at DESC").Find(&inquiries).Error; err != nil {
			logger.Error().Err(err).Msg("inquiry list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to fetch inquiries", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Inquiries fetched", "data": inquiries})
	}
}

// CreateServiceRequest handles POST /requestservices.
func CreateServiceRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid request body", "error": err.Error()})
			return
		}
		if err := validateContact(input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": err.Error(), "error": err.Error()})
			return
		}

		req := models.ServiceRequest{
			Name:        input.Name,
			Mobile:      input.Mobile,
			Type:        input.Type,
			Description: input.Description,
		}
		if err := db.Create(&req).Error; err != nil {
			logger.Error().Err(err).Msg("service request create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": 201, "message": "Request submitted", "data": req})
	}
}

// GetServiceRequests handles GET /requestservices (admin list).
func GetServiceRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requests []models.ServiceRequest
		if err := db.Order("created_at DESC").Find(&requests).Error; err != nil {
			logger.Error().Err(err).Msg("service request list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to fetch requests", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Requests fetched", "data": requests})
	}
}
