package order_controller

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

// GetOrders godoc
// @Summary Get orders (CMS)
// @Description Retrieve all orders for the back office with customer details and pagination. Supports filtering by status and searching by order number, customer email or name.
// @Tags CMS - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Filter by order status (pending_payment, payment_submitted, payment_approved, shipped, delivered, cancelled)"
// @Param q query string false "Search by order number, customer email, or customer name"
// @Success 200 {object} models.ApiResponse{data=[]models.AdminOrderListRow,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	status := strings.TrimSpace(c.Query("status"))
	q := strings.TrimSpace(c.Query("q"))

	log.Printf("[admin.orders] params page=%d limit=%d status=%q q=%q", page, limit, status, q)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	whereConditions := []string{}
	whereArgs := []interface{}{}

	if status != "" {
		whereConditions = append(whereConditions, "o.status = ?")
		whereArgs = append(whereArgs, status)
	}
	if q != "" {
		like := "%" + q + "%"
		whereConditions = append(whereConditions, "(o.order_number ILIKE ? OR u.email ILIKE ? OR u.name ILIKE ?)")
		whereArgs = append(whereArgs, like, like, like)
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	countSQL := `
		SELECT COUNT(DISTINCT o.id)
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
	` + whereClause

	var total int64
	if err := config.StoreGorm.WithContext(ctx).
		Raw(countSQL, whereArgs...).
		Scan(&total).Error; err != nil {
		log.Printf("[admin.orders] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count orders"))
		return
	}

	dataSQL := `
		SELECT
			o.id,
			o.order_number,
			u.id AS customer_id,
			COALESCE(NULLIF(u.name, ''), u.email) AS customer_name,
			u.email AS customer_email,
			o.created_at,
			COUNT(oi.id)::int AS item_count,
			o.total_amount,
			o.status,
			p.status AS payment_status
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		LEFT JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN payments p ON p.order_id = o.id
	` + whereClause + `
		GROUP BY o.id, o.order_number, u.id, u.name, u.email, o.created_at, o.total_amount, o.status, p.status
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`
	dataArgs := append(whereArgs, limit, offset)

	result := make([]models.AdminOrderListRow, 0, limit)
	if err := config.StoreGorm.WithContext(ctx).
		Raw(dataSQL, dataArgs...).
		Scan(&result).Error; err != nil {
		log.Printf("[admin.orders] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Orders retrieved successfully",
		result,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      int(total),
			TotalPages: totalPages,
		},
	))
}
