package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/config"
	admincontroller "github.com/ijasahamedstr/buycourse.lk-sub000/controllers/admin"
	ordercontroller "github.com/ijasahamedstr/buycourse.lk-sub000/controllers/order"
	"github.com/ijasahamedstr/buycourse.lk-sub000/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Accessible with
// the service API key or an admin JWT.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.AppConfig) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(cfg.AdminAPIKey, cfg.JWTSecret))
	{
		adminGroup.GET("/admins", admincontroller.GetAllAdmins(db))

		// ─────────── Order Management ───────────
		adminGroup.GET("/orders", ordercontroller.GetAllOrders(db))
		adminGroup.PUT("/orders/:id/status", ordercontroller.UpdateOrderStatus(db))

		// ─────────── Exports ───────────
		exportGroup := adminGroup.Group("/export")
		{
			exportGroup.GET("/orders", admincontroller.ExportOrdersToExcel(db))
			exportGroup.GET("/inquiries", admincontroller.ExportInquiriesToExcel(db))
		}
	}
}
