package address_controller

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

// DeleteAddress godoc
// @Summary Delete a shipping address
// @Description Soft-deletes one of the authenticated customer's addresses. Orders keep their address snapshot, so deletion never breaks order history. When the default address is deleted the most recent remaining address becomes the default.
// @Tags Customer - Addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/addresses/{id} [delete]
func DeleteAddress(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err = config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := tx.
			Where("id = ? AND user_id = ? AND status = 'active'", addressID, userID).
			First(&address).Error; err != nil {
			return err
		}

		if err := tx.Model(&address).
			Updates(map[string]interface{}{"status": "deleted", "is_default": false}).Error; err != nil {
			return err
		}

		// Promote the most recent remaining address when the default was deleted
		if address.IsDefault {
			var next models.Address
			err := tx.
				Where("user_id = ? AND status = 'active'", userID).
				Order("created_at DESC").
				First(&next).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return err
			}
			return tx.Model(&next).Update("is_default", true).Error
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Address not found"))
			return
		}
		log.Printf("❌ Failed to delete address %s: %v", addressID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete address"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Address deleted successfully", nil))
}
