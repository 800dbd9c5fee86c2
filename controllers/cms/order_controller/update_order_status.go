package order_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	catalog_cache "github.com/AngelSpinazzola/hardware-store-backend/cache"
	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateOrderStatus godoc
// @Summary Update order status (CMS)
// @Description Moves an order along its lifecycle. Only the transitions allowed by the status machine are accepted; cancelling an unshipped order restores product stock.
// @Tags CMS - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Transition not allowed"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status data: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	var transitionErr error

	err = config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			Where("id = ?", orderID).
			First(&order).Error; err != nil {
			return err
		}

		if !models.CanTransitionOrderStatus(order.Status, req.Status) {
			transitionErr = fmt.Errorf("cannot move order from %s to %s", order.Status, req.Status)
			return transitionErr
		}

		updates := map[string]interface{}{"status": req.Status}
		if req.AdminNotes != nil {
			updates["admin_notes"] = *req.AdminNotes
		}

		now := time.Now()
		switch req.Status {
		case models.OrderStatusShipped:
			updates["shipped_at"] = now
		case models.OrderStatusDelivered:
			updates["delivered_at"] = now
		case models.OrderStatusCancelled:
			// The order never shipped, put the reserved stock back
			for _, item := range order.Items {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", item.ProductID).
					Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}

		order.Status = req.Status
		return nil
	})
	if err != nil {
		if transitionErr != nil {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, transitionErr.Error()))
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order-status] ERROR update failed order=%s err=%v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order status"))
		return
	}

	if req.Status == models.OrderStatusCancelled {
		catalog_cache.Invalidate()
	}

	log.Printf("[admin.order-status] order=%s -> %s", order.OrderNumber, req.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", order))
}
