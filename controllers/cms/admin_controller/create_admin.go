package admin_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/AngelSpinazzola/hardware-store-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateAdmin godoc
// @Summary Create an admin account (CMS)
// @Description Creates a back-office admin account. Only super admins may call this; there is no self-registration.
// @Tags CMS - Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param admin body models.CreateAdminRequest true "Admin data"
// @Success 201 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse "Super admin access required"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/admins [post]
func CreateAdmin(c *gin.Context) {
	var req models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin data: "+err.Error()))
		return
	}

	authService := services.GetAdminAuthService()
	if !authService.ValidatePassword(req.Password) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Password must be at least 8 characters"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.Admin
	err := config.StoreGorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[admin.create] ERROR lookup failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create admin"))
		return
	}

	passwordHash, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Printf("[admin.create] ERROR hashing failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create admin"))
		return
	}

	admin := models.Admin{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Role:         req.Role,
		Status:       "active",
	}
	if admin.Role == "" {
		admin.Role = "admin"
	}

	if err := config.StoreGorm.WithContext(ctx).Create(&admin).Error; err != nil {
		log.Printf("[admin.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create admin"))
		return
	}

	log.Printf("[admin.create] admin created email=%s role=%s", admin.Email, admin.Role)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Admin created successfully", admin.ToResponse()))
}
