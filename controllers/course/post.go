package coursecontroller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
	"github.com/ijasahamedstr/buycourse.lk-sub000/validate"
)

// CourseInput is the admin form payload for create and update. Price
// arrives as a JSON number or numeric string depending on the form.
type CourseInput struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Price        json.RawMessage        `json:"price"`
	Duration     string                 `json:"duration"`
	Image        string                 `json:"image"`
	DemoVideo    string                 `json:"demoVideo"`
	Category     string                 `json:"category"`
	MainHeadings []models.CourseHeading `json:"mainHeadings"`
}

var errInvalidCategory = errors.New("category must be Tamil, English or Sinhala")

// validateCourse applies the admin form rules and returns the parsed price.
func validateCourse(in CourseInput) (float64, error) {
	if err := validate.NotBlank("name", in.Name); err != nil {
		return 0, err
	}
	if err := validate.NotBlank("description", in.Description); err != nil {
		return 0, err
	}
	if err := validate.NotBlank("category", in.Category); err != nil {
		return 0, err
	}
	if !models.ValidCourseCategory(in.Category) {
		return 0, errInvalidCategory
	}
	price, err := validate.RawPrice("price", in.Price, false)
	if err != nil {
		return 0, err
	}
	if err := validate.ImageURL("image", in.Image); err != nil {
		return 0, err
	}
	for _, h := range in.MainHeadings {
		if err := validate.NotBlank("heading", h.Heading); err != nil {
			return 0, err
		}
		if err := validate.UniqueNonEmpty("subHeadings", h.SubHeadings); err != nil {
			return 0, err
		}
	}
	return *price, nil
}

// CreateCourse handles POST /Couressection.
func CreateCourse(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		course := models.Course{
			Name:         input.Name,
			Description:  input.Description,
			Price:        price,
			Duration:     input.Duration,
			Image:        input.Image,
			DemoVideo:    input.DemoVideo,
			Category:     models.CourseCategory(input.Category),
			MainHeadings: input.MainHeadings,
		}
		if err := db.Create(&course).Error; err != nil {
			logger.Error().Err(err).Msg("course create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to create course", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": 201, "message": "Course created", "data": course})
	}
}
