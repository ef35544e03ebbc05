package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/cartstore"
	"github.com/ijasahamedstr/buycourse.lk-sub000/config"
	cartcontroller "github.com/ijasahamedstr/buycourse.lk-sub000/controllers/cart"
)

// SetupCartRoutes registers the token-scoped cart surface. No auth:
// possession of the token is the capability, exactly as a browser's
// local cart was.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, store *cartstore.Store, cfg config.AppConfig) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("", cartcontroller.CreateCart(store))
		cartGroup.GET("/:token", cartcontroller.GetCart(store))
		cartGroup.POST("/:token/items", cartcontroller.AddItem(db, store))
		cartGroup.PUT("/:token/items/:id", cartcontroller.UpdateItemQuantity(store))
		cartGroup.DELETE("/:token/items/:id", cartcontroller.RemoveItem(store))
		cartGroup.DELETE("/:token", cartcontroller.ClearCart(store))
		cartGroup.GET("/:token/checkout", cartcontroller.Checkout(store, cfg.WhatsAppNumber))
	}

	// Cross-tab sync: every open client of a cart gets the fresh cart
	// pushed after any write.
	r.GET("/ws/cart/:token", cartcontroller.CartWebSocketHandler)
}
