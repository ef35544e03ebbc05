package cartcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ijasahamedstr/buycourse.lk-sub000/cartstore"
	"github.com/ijasahamedstr/buycourse.lk-sub000/checkout"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
)

// Checkout handles GET /cart/:token/checkout: returns the prefilled
// WhatsApp link for the cart. An empty cart is refused so the client
// never opens a malformed link.
func Checkout(store *cartstore.Store, whatsAppNumber string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := store.Load(c.Request.Context(), c.Param("token"))
		if err != nil {
			logger.Error().Err(err).Msg("checkout cart load failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}

		link, err := checkout.Link(whatsAppNumber, lines)
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Cart is empty", "error": "cart is empty"})
				return
			}
			logger.Error().Err(err).Msg("checkout link build failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}

		message, _ := checkout.Compose(lines)
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Checkout link ready", "data": gin.H{
			"url":     link,
			"message": message,
			"total":   cartstore.Total(lines),
		}})
	}
}
