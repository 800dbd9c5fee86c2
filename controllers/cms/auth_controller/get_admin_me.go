package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAdminMe godoc
// @Summary Get the authenticated admin
// @Description Returns the profile of the currently logged-in back-office admin.
// @Tags CMS - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/auth/me [get]
func GetAdminMe(c *gin.Context) {
	adminID, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.StoreGorm.
		WithContext(ctx).
		Where("id = ?", adminID).
		First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Admin not found"))
			return
		}
		log.Printf("❌ Failed to fetch admin %v: %v", adminID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch admin"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin fetched successfully", admin.ToResponse()))
}
