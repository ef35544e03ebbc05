package cartcontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/cartstore"
	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
	"github.com/ijasahamedstr/buycourse.lk-sub000/plans"
)

type AddItemInput struct {
	Kind     string `json:"kind" binding:"required"`
	RefID    uint   `json:"refId" binding:"required"`
	Duration string `json:"duration"`
	Qty      int    `json:"qty"`
}

type QuantityInput struct {
	Qty int `json:"qty"`
}

func cartPayload(lines []cartstore.Line) gin.H {
	return gin.H{"items": lines, "total": cartstore.Total(lines)}
}

// CreateCart handles POST /cart: issues a fresh cart token.
func CreateCart(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := store.NewToken(c.Request.Context())
		if err != nil {
			logger.Error().Err(err).Msg("cart create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": 201, "message": "Cart created", "data": gin.H{"token": token}})
	}
}

// GetCart handles GET /cart/:token.
func GetCart(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := store.Load(c.Request.Context(), c.Param("token"))
		if err != nil {
			logger.Error().Err(err).Msg("cart load failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Cart fetched", "data": cartPayload(lines)})
	}
}

// buildLine resolves the referenced course or plan into a cart line,
// snapshotting title and price at add time.
func buildLine(db *gorm.DB, input AddItemInput) (cartstore.Line, error) {
	switch cartstore.Kind(input.Kind) {
	case cartstore.KindCourse:
		var course models.Course
		if err := db.First(&course, input.RefID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return cartstore.Line{}, errors.New("course does not exist")
			}
			return cartstore.Line{}, err
		}
		return cartstore.Line{
			ID:    cartstore.CourseLineID(course.ID),
			Kind:  cartstore.KindCourse,
			RefID: course.ID,
			Title: course.Name,
			Price: course.Price,
			Qty:   input.Qty,
			Image: course.Image,
		}, nil

	case cartstore.KindPlan:
		if input.Duration == "" {
			return cartstore.Line{}, errors.New("duration is required for plan items")
		}
		var svc models.OttService
		if err := db.First(&svc, input.RefID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return cartstore.Line{}, errors.New("service does not exist")
			}
			return cartstore.Line{}, err
		}
		planList := []plans.PlanItem(svc.Plans)
		if len(planList) == 0 {
			planList = plans.Normalize(svc.Stock, []byte(svc.LegacyPlanData), []byte(svc.LegacyHeadingData))
		}
		for _, plan := range planList {
			if plan.Duration != input.Duration {
				continue
			}
			if plan.StockStatus == plans.StockOut {
				return cartstore.Line{}, errors.New("plan is out of stock")
			}
			price := svc.Price
			if plan.Price != nil {
				price = *plan.Price
			}
			image := ""
			if len(svc.Images) > 0 {
				image = svc.Images[0]
			}
			return cartstore.Line{
				ID:            cartstore.PlanLineID(svc.ID, plan.Duration),
				Kind:          cartstore.KindPlan,
				RefID:         svc.ID,
				Title:         svc.Name,
				DurationLabel: plan.Duration,
				Price:         price,
				Qty:           input.Qty,
				Image:         image,
			}, nil
		}
		return cartstore.Line{}, errors.New("plan duration not found")

	default:
		return cartstore.Line{}, errors.New("kind must be course or plan")
	}
}

// AddItem handles POST /cart/:token/items. Repeat adds of the same
// composite id leave the cart untouched and report it.
func AddItem(db *gorm.DB, store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid input: " + err.Error(), "error": err.Error()})
			return
		}

		line, err := buildLine(db, input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": err.Error(), "error": err.Error()})
			return
		}
		line.AddedAt = time.Now()

		lines, already, err := store.Add(c.Request.Context(), c.Param("token"), line)
		if err != nil {
			logger.Error().Err(err).Msg("cart add failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		if already {
			c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Already in cart", "data": cartPayload(lines)})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": 201, "message": "Added to cart", "data": cartPayload(lines)})
	}
}

// UpdateItemQuantity handles PUT /cart/:token/items/:id.
func UpdateItemQuantity(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid input: " + err.Error(), "error": err.Error()})
			return
		}

		lines, err := store.SetQuantity(c.Request.Context(), c.Param("token"), c.Param("id"), input.Qty)
		if err != nil {
			logger.Error().Err(err).Msg("cart quantity update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Cart updated", "data": cartPayload(lines)})
	}
}

// RemoveItem handles DELETE /cart/:token/items/:id.
func RemoveItem(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := store.Remove(c.Request.Context(), c.Param("token"), c.Param("id"))
		if err != nil {
			logger.Error().Err(err).Msg("cart remove failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Item removed", "data": cartPayload(lines)})
	}
}

// ClearCart handles DELETE /cart/:token.
func ClearCart(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Clear(c.Request.Context(), c.Param("token")); err != nil {
			logger.Error().Err(err).Msg("cart clear failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Something went wrong", "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": 200, "message": "Cart cleared", "data": cartPayload(nil)})
	}
}
