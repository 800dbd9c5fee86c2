package payment_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/middleware"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmitReceipt godoc
// @Summary Submit a bank-transfer receipt
// @Description Attaches a transfer receipt URL to a pending order. The order moves to payment_submitted and waits for admin review. Re-submitting after a rejection replaces the previous receipt and resets the review.
// @Tags Customer - Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param receipt body models.SubmitReceiptRequest true "Receipt URL"
// @Success 200 {object} models.ApiResponse{data=models.Payment}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Order not awaiting payment"
// @Failure 500 {object} models.ApiResponse
// @Router /user/orders/{id}/payment [post]
func SubmitReceipt(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.SubmitReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid receipt data: "+err.Error()))
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var payment models.Payment
	var conflict bool

	err = config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.
			Where("id = ? AND user_id = ?", orderID, uid).
			First(&order).Error; err != nil {
			return err
		}

		// A receipt can be (re)submitted while payment is pending or after a
		// rejection sent the order back to pending_payment.
		if order.Status != models.OrderStatusPendingPayment &&
			order.Status != models.OrderStatusPaymentSubmitted {
			conflict = true
			return errors.New("order not awaiting payment")
		}

		var existing models.Payment
		err := tx.Where("order_id = ?", order.ID).First(&existing).Error
		switch {
		case err == nil:
			// Replace the receipt and reset the review
			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"receipt_url": req.ReceiptURL,
				"amount":      order.TotalAmount,
				"status":      models.PaymentStatusPending,
				"admin_notes": nil,
				"reviewed_by": nil,
				"reviewed_at": nil,
			}).Error; err != nil {
				return err
			}
			payment = existing
			payment.ReceiptURL = req.ReceiptURL
			payment.Status = models.PaymentStatusPending
		case errors.Is(err, gorm.ErrRecordNotFound):
			payment = models.Payment{
				OrderID:    order.ID,
				UserID:     uid,
				Method:     "bank_transfer",
				Amount:     order.TotalAmount,
				ReceiptURL: req.ReceiptURL,
				Status:     models.PaymentStatusPending,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if order.Status == models.OrderStatusPendingPayment {
			return tx.Model(&order).
				Update("status", models.OrderStatusPaymentSubmitted).Error
		}
		return nil
	})
	if err != nil {
		if conflict {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Order is not awaiting payment"))
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("❌ Failed to submit receipt for order %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit receipt"))
		return
	}

	log.Printf("✅ Receipt submitted for order %s", orderID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Receipt submitted successfully", payment))
}
