package payment_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewPayment godoc
// @Summary Review a bank-transfer receipt (CMS)
// @Description Approves or rejects a pending receipt. Approval moves the order to payment_approved; rejection sends it back to pending_payment so the customer can submit a new receipt.
// @Tags CMS - Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param review body models.ReviewPaymentRequest true "Review decision"
// @Success 200 {object} models.ApiResponse{data=models.Payment}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Receipt already reviewed"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/payments/{id}/review [patch]
func ReviewPayment(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid payment ID"))
		return
	}

	var req models.ReviewPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid review data: "+err.Error()))
		return
	}

	adminIDValue, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	adminID, err := uuid.Parse(adminIDValue.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var payment models.Payment
	var conflictErr error

	err = config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", paymentID).
			First(&payment).Error; err != nil {
			return err
		}

		if payment.Status != models.PaymentStatusPending {
			conflictErr = errors.New("payment has already been reviewed")
			return conflictErr
		}

		now := time.Now()
		newStatus := models.PaymentStatusRejected
		orderStatus := models.OrderStatusPendingPayment
		if req.Approve {
			newStatus = models.PaymentStatusApproved
			orderStatus = models.OrderStatusPaymentApproved
		}

		// The order must still be awaiting this review. It can have moved on
		// (e.g. cancelled) since the receipt entered the queue, and a review
		// must never overwrite a status outside the machine's transitions.
		var order models.Order
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", payment.OrderID).
			First(&order).Error; err != nil {
			return err
		}
		if !models.CanTransitionOrderStatus(order.Status, orderStatus) {
			conflictErr = fmt.Errorf("order is %s, receipt can no longer be reviewed", order.Status)
			return conflictErr
		}

		updates := map[string]interface{}{
			"status":      newStatus,
			"reviewed_by": adminID,
			"reviewed_at": now,
		}
		if req.AdminNotes != nil {
			updates["admin_notes"] = *req.AdminNotes
		}
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Model(&order).
			Update("status", orderStatus).Error; err != nil {
			return err
		}

		payment.Status = newStatus
		payment.ReviewedBy = &adminID
		payment.ReviewedAt = &now
		return nil
	})
	if err != nil {
		if conflictErr != nil {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, conflictErr.Error()))
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Payment not found"))
			return
		}
		log.Printf("[admin.payment-review] ERROR review failed payment=%s err=%v", paymentID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to review payment"))
		return
	}

	log.Printf("[admin.payment-review] payment=%s approved=%v by admin=%s", paymentID, req.Approve, adminID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment reviewed successfully", payment))
}
