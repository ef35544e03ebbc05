package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/auth"
	"github.com/ijasahamedstr/buycourse.lk-sub000/config"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.AppConfig) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/admin/login", auth.AdminLogin(db, cfg.JWTSecret))
	}
}
