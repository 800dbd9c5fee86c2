package order_controller

import (
	"log"
	"net/http"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOrderStats godoc
// @Summary Get order statistics (CMS)
// @Description Returns dashboard counters: orders per lifecycle stage, total and average revenue over approved orders, and revenue of the last seven days.
// @Tags CMS - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.OrderStatsResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders/stats [get]
func GetOrderStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Single aggregate over the pgx pool; revenue only counts orders whose
	// payment was approved.
	query := `
		SELECT
			COUNT(*)::int AS total_orders,
			COUNT(*) FILTER (WHERE status = 'pending_payment')::int AS pending_payment,
			COUNT(*) FILTER (WHERE status = 'payment_submitted')::int AS awaiting_review,
			COUNT(*) FILTER (WHERE status = 'delivered')::int AS completed,
			COUNT(*) FILTER (WHERE status = 'cancelled')::int AS cancelled,
			COALESCE(SUM(total_amount) FILTER (
				WHERE status IN ('payment_approved', 'shipped', 'delivered')), 0)::float8 AS revenue_total,
			COALESCE(AVG(total_amount) FILTER (
				WHERE status IN ('payment_approved', 'shipped', 'delivered')), 0)::float8 AS average_order,
			COALESCE(SUM(total_amount) FILTER (
				WHERE status IN ('payment_approved', 'shipped', 'delivered')
				AND created_at >= NOW() - INTERVAL '7 days'), 0)::float8 AS revenue_this_week
		FROM orders
	`

	var stats models.OrderStatsResponse
	err := config.StorePool.QueryRow(ctx, query).Scan(
		&stats.TotalOrders,
		&stats.PendingPayment,
		&stats.AwaitingReview,
		&stats.Completed,
		&stats.Cancelled,
		&stats.RevenueTotal,
		&stats.AverageOrder,
		&stats.RevenueThisWeek,
	)
	if err != nil {
		log.Printf("[admin.order-stats] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order stats fetched successfully", stats))
}
