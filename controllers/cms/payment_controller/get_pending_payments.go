package payment_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPendingPayments godoc
// @Summary Get the payment review queue (CMS)
// @Description Returns submitted bank-transfer receipts awaiting review, oldest first. The status filter allows browsing already reviewed receipts.
// @Tags CMS - Payments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Review state" Enums(pending, approved, rejected) default(pending)
// @Success 200 {object} models.ApiResponse{data=[]models.AdminPaymentListRow,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/payments [get]
func GetPendingPayments(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	status := strings.TrimSpace(c.DefaultQuery("status", models.PaymentStatusPending))
	switch status {
	case models.PaymentStatusPending, models.PaymentStatusApproved, models.PaymentStatusRejected:
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid payment status"))
		return
	}

	// Pending receipts are only reviewable while their order still awaits
	// review; receipts whose order moved on (e.g. cancelled) stay out of
	// the queue.
	whereClause := "p.status = ?"
	if status == models.PaymentStatusPending {
		whereClause += " AND o.status = '" + models.OrderStatusPaymentSubmitted + "'"
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		WHERE ` + whereClause
	if err := config.StoreGorm.WithContext(ctx).
		Raw(countQuery, status).
		Scan(&total).Error; err != nil {
		log.Printf("[admin.payments] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count payments"))
		return
	}

	query := `
		SELECT
			p.id,
			p.order_id,
			o.order_number,
			COALESCE(NULLIF(u.name, ''), u.email) AS customer_name,
			u.email AS customer_email,
			p.amount,
			p.receipt_url,
			p.status,
			p.created_at
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		JOIN users u ON u.id = p.user_id
		WHERE ` + whereClause + `
		ORDER BY p.created_at ASC
		LIMIT ? OFFSET ?
	`

	rows := make([]models.AdminPaymentListRow, 0, limit)
	if err := config.StoreGorm.WithContext(ctx).
		Raw(query, status, limit, offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[admin.payments] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch payments"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Payments retrieved successfully",
		rows,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      int(total),
			TotalPages: totalPages,
		},
	))
}
