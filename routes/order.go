package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/cartstore"
	"github.com/ijasahamedstr/buycourse.lk-sub000/config"
	ordercontroller "github.com/ijasahamedstr/buycourse.lk-sub000/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, store *cartstore.Store, cfg config.AppConfig) {
	// Storefront: place an order from a cart token.
	r.POST("/order", ordercontroller.PlaceOrder(db, store))

	// Admin dashboard: realtime feed of newly placed orders.
	r.GET("/ws/orders", ordercontroller.OrderWebSocketHandler)
}
