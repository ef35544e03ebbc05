package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/cartstore"
	"github.com/ijasahamedstr/buycourse.lk-sub000/config"
)

// SetupRoutes is the single entry point that wires up the storefront,
// cart, order, auth, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *cartstore.Store, cfg config.AppConfig) {
	// Public storefront reads + contact submissions.
	SetupStoreRoutes(r, db, cfg)

	// Token-scoped cart and checkout.
	SetupCartRoutes(r, db, store, cfg)

	// Order placement + admin order feed.
	SetupOrderRoutes(r, db, store, cfg)

	// Admin login.
	SetupAuthRoutes(r, db, cfg)

	// Admin back-office (API key or admin JWT).
	SetupAdminRoutes(r, db, cfg)
}
