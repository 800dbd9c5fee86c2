package address_controller

import (
	"log"
	"net/http"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/middleware"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetAddresses godoc
// @Summary Get the customer's addresses
// @Description Returns all active addresses for the authenticated customer, default address first.
// @Tags Customer - Addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Address}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/addresses [get]
func GetAddresses(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	addresses := make([]models.Address, 0)
	if err := config.StoreGorm.
		WithContext(ctx).
		Where("user_id = ? AND status = 'active'", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		log.Printf("❌ Failed to fetch addresses for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch addresses"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Addresses fetched successfully", addresses))
}
