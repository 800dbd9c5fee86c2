package address_controller

import (
	"log"
	"net/http"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/middleware"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddAddress godoc
// @Summary Add a shipping address
// @Description Creates a new shipping address for the authenticated customer. The first address becomes the default automatically; marking a later one as default demotes the previous default.
// @Tags Customer - Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param address body models.AddAddressRequest true "Address data"
// @Success 201 {object} models.ApiResponse{data=models.Address}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/addresses [post]
func AddAddress(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address data: "+err.Error()))
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	address := models.Address{
		UserID:     uid,
		Label:      req.Label,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Street:     req.Street,
		Number:     req.Number,
		Apartment:  req.Apartment,
		City:       req.City,
		Province:   req.Province,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		IsDefault:  req.IsDefault,
		Status:     "active",
	}

	err = config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Address{}).
			Where("user_id = ? AND status = 'active'", uid).
			Count(&count).Error; err != nil {
			return err
		}

		// First address is always the default
		if count == 0 {
			address.IsDefault = true
		} else if address.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ? AND is_default = true", uid).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}

		return tx.Create(&address).Error
	})
	if err != nil {
		log.Printf("❌ Failed to create address for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create address"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Address created successfully", address))
}
