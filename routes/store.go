package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	coursecontroller "github.com/ijasahamedstr/buycourse.lk-sub000/controllers/course"
	inquirycontroller "github.com/ijasahamedstr/buycourse.lk-sub000/controllers/inquiry"
	ottcontroller "github.com/ijasahamedstr/buycourse.lk-sub000/controllers/ott"
	slidercontroller "github.com/ijasahamedstr/buycourse.lk-sub000/controllers/slider"

	"github.com/ijasahamedstr/buycourse.lk-sub000/config"
	"github.com/ijasahamedstr/buycourse.lk-sub000/middleware"
)

// SetupStoreRoutes registers the storefront surface. Base paths are
// case-sensitive and kept exactly as the clients already call them.
// Reads are public; writes on the same paths require admin credentials.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, cfg config.AppConfig) {
	admin := middleware.RequireAdmin(cfg.AdminAPIKey, cfg.JWTSecret)

	// ─────────── Courses ───────────
	r.GET("/Couressection", coursecontroller.GetCourses(db))
	r.GET("/Couressection/:id", coursecontroller.GetCourseByID(db))
	r.POST("/Couressection", admin, coursecontroller.CreateCourse(db))
	r.PUT("/Couressection/:id", admin, coursecontroller.UpdateCourse(db))
	r.DELETE("/Couressection/:id", admin, coursecontroller.DeleteCourse(db))

	// ─────────── OTT Services ───────────
	r.GET("/Ottservice", ottcontroller.GetServices(db))
	r.GET("/Ottservice/:id", ottcontroller.GetServiceByID(db))
	r.POST("/Ottservice", admin, ottcontroller.CreateService(db))
	r.PUT("/Ottservice/:id", admin, ottcontroller.UpdateService(db))
	r.DELETE("/Ottservice/:id", admin, ottcontroller.DeleteService(db))

	// ─────────── Sliders ───────────
	r.GET("/Slidersection", slidercontroller.GetSliders(db))
	r.GET("/Slidersection/:id", slidercontroller.GetSliderByID(db))
	r.POST("/Slidersection", admin, slidercontroller.CreateSlider(db))
	r.PUT("/Slidersection/:id", admin, slidercontroller.UpdateSlider(db))
	r.DELETE("/Slidersection/:id", admin, slidercontroller.DeleteSlider(db))

	// ─────────── Contact forms ───────────
	r.POST("/inquiry", inquirycontroller.CreateInquiry(db))
	r.GET("/inquiry", admin, inquirycontroller.GetInquiries(db))
	r.POST("/requestservices", inquirycontroller.CreateServiceRequest(db))
	r.GET("/requestservices", admin, inquirycontroller.GetServiceRequests(db))
}
