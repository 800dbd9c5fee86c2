package order_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/middleware"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/AngelSpinazzola/hardware-store-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary Get the customer's order history
// @Description Returns the authenticated customer's orders, newest first, with item counts and locale-formatted totals.
// @Tags Customer - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderHistoryResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/orders [get]
func GetOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var totalCount int64
	if err := config.StoreGorm.
		WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", userID).
		Count(&totalCount).Error; err != nil {
		log.Printf("❌ Failed to count orders for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	type orderRow struct {
		models.Order
		ItemCount int `gorm:"column:item_count"`
	}

	query := `
		SELECT o.*, COUNT(i.id) AS item_count
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.user_id = ?
		GROUP BY o.id
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`

	rows := make([]orderRow, 0)
	if err := config.StoreGorm.
		WithContext(ctx).
		Raw(query, userID, limit, offset).
		Scan(&rows).Error; err != nil {
		log.Printf("❌ Failed to fetch orders for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	history := make([]models.OrderHistoryResponse, 0, len(rows))
	for _, row := range rows {
		history = append(history, models.OrderHistoryResponse{
			ID:           row.ID,
			OrderNumber:  row.OrderNumber,
			Status:       row.Status,
			TotalAmount:  row.TotalAmount,
			TotalDisplay: utils.FormatPrice(row.TotalAmount),
			ItemCount:    row.ItemCount,
			CreatedAt:    row.CreatedAt,
		})
	}

	totalPages := (int(totalCount) + limit - 1) / limit
	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Orders fetched successfully",
		history,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      int(totalCount),
			TotalPages: totalPages,
		},
	))
}
