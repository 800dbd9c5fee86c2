package order_controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	catalog_cache "github.com/AngelSpinazzola/hardware-store-backend/cache"
	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/middleware"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/AngelSpinazzola/hardware-store-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateOrder godoc
// @Summary Create an order
// @Description Creates an order from the cart items. Prices come from the database, never from the client. Stock is checked and decremented inside one transaction; the shipping address is snapshotted into the order. The order starts in pending_payment awaiting a bank-transfer receipt.
// @Tags Customer - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Insufficient stock"
// @Failure 500 {object} models.ApiResponse
// @Router /user/orders [post]
func CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order data: "+err.Error()))
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(15 * time.Second)
	defer cancel()

	orderNumber, err := services.NextOrderNumber(ctx)
	if err != nil {
		log.Printf("❌ Failed to allocate order number: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	var order models.Order
	var stockErr error

	err = config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Address must belong to the customer; snapshot it into the order
		var address models.Address
		if err := tx.
			Where("id = ? AND user_id = ? AND status = 'active'", req.AddressID, uid).
			First(&address).Error; err != nil {
			return fmt.Errorf("address lookup: %w", err)
		}
		addressSnapshot, err := json.Marshal(address)
		if err != nil {
			return err
		}

		var subtotal float64
		items := make([]models.OrderItem, 0, len(req.Items))

		for _, input := range req.Items {
			var product models.Product
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ? AND status = 'Active'", input.ProductID).
				First(&product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					stockErr = fmt.Errorf("product %s is no longer available", input.ProductID)
					return stockErr
				}
				return err
			}

			if product.Stock < input.Quantity {
				stockErr = fmt.Errorf("insufficient stock for %s (%d available)", product.Name, product.Stock)
				return stockErr
			}

			if err := tx.Model(&product).
				Update("stock", gorm.Expr("stock - ?", input.Quantity)).Error; err != nil {
				return err
			}

			lineSubtotal := product.Price * float64(input.Quantity)
			subtotal += lineSubtotal
			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    input.Quantity,
				Subtotal:    lineSubtotal,
			})
		}

		order = models.Order{
			UserID:          uid,
			OrderNumber:     orderNumber,
			AddressID:       &address.ID,
			AddressSnapshot: addressSnapshot,
			Subtotal:        subtotal,
			ShippingCost:    0,
			TotalAmount:     subtotal,
			Status:          models.OrderStatusPendingPayment,
			CustomerNotes:   req.CustomerNotes,
			Items:           items,
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		if stockErr != nil {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, stockErr.Error()))
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Address not found"))
			return
		}
		log.Printf("❌ Failed to create order for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	// Stock changed, the storefront snapshot is stale
	catalog_cache.Invalidate()

	log.Printf("✅ Order %s created for user %s (total %.2f)", order.OrderNumber, userID, order.TotalAmount)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", order))
}
