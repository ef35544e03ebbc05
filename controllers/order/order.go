package ordercontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/cartstore"
	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
	"github.com/ijasahamedstr/buycourse.lk-sub000/validate"
)

type PlaceOrderRequest struct {
	Name        string `json:"name" binding:"required"`
	Mobile      string `json:"mobile" binding:"required"`
	InquiryType string `json:"inquiryType"`
	CartToken   string `json:"cartToken" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder snapshots the cart into an order row. A single create, no
// cross-document transaction; the cart is cleared afterwards on a
// best-effort basis.
func PlaceOrder(db *gorm.DB, store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid input: " + err.Error(), "error": err.Error()})
			return
		}
		if err := validate.NotBlank("name", req.Name); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": err.Error(), "error": err.Error()})
			return
		}
		if err := validate.NotBlank("mobile", req.Mobile); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": err.Error(), "error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		lines, err := store.Load(ctx, req.CartToken)
		if err != nil {
			logger.Error().Err(err).Msg("order cart load failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Cart is empty", "error": "cart is empty"})
			return
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, models.OrderItem{
				LineID:        l.ID,
				Kind:          string(l.Kind),
				RefID:         l.RefID,
				Title:         l.Title,
				DurationLabel: l.DurationLabel,
				Price:         l.Price,
				Quantity:      l.Qty,
				Image:         l.Image,
			})
		}

		order := models.Order{
			Ref:         generateOrderRef(),
			Name:        req.Name,
			Mobile:      req.Mobile,
			InquiryType: req.InquiryType,
			Items:       items,
			TotalAmount: cartstore.Total(lines),
			Status:      models.OrderStatusPending,
			CreatedAt:   time.Now(),
		}
		if err := db.Create(&order).Error; err != nil {
			logger.Error().Err(err).Msg("order create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}

		if err := store.Clear(ctx, req.CartToken); err != nil {
			logger.Warn().Err(err).Str("ref", order.Ref).Msg("cart clear after order failed")
		}
		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{"status": 201, "message": "Order placed", "data": order})
	}
}

// GetAllOrders handles GET /admin/orders.
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to fetch orders", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Orders fetched", "data": orders})
	}
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid order ID", "error": "invalid id"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid input: " + err.Error(), "error": err.Error()})
			return
		}
		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": err.Error(), "error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": 404, "message": "Order not found", "error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to fetch order", "error": err.Error()})
			return
		}

		order.Status = status
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to update order", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Order updated", "data": order})
	}
}
