package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/AngelSpinazzola/hardware-store-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminLogin godoc
// @Summary Admin login
// @Description Authenticates a back-office admin with email and password. Five failed attempts lock the account for fifteen minutes.
// @Tags CMS - Auth
// @Accept json
// @Produce json
// @Param credentials body models.AdminLoginRequest true "Login credentials"
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 423 {object} models.ApiResponse "Account locked"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/auth/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid credentials format"))
		return
	}

	authService := services.GetAdminAuthService()

	if authService.IsLockedOut(req.Email) {
		c.JSON(http.StatusLocked, models.ErrorResponse(c, services.LockoutMessage(req.Email)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.StoreGorm.
		WithContext(ctx).
		Where("email = ? AND status = 'active'", req.Email).
		First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error as a wrong password, no account enumeration
			authService.RecordFailedLogin(req.Email)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("❌ Admin login query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	if !authService.VerifyPassword(admin.PasswordHash, req.Password) {
		authService.RecordFailedLogin(req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	authService.ClearFailedLogins(req.Email)

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email, admin.Role)
	if err != nil {
		log.Printf("❌ Failed to generate admin JWT: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	now := time.Now()
	if err := config.StoreGorm.
		WithContext(ctx).
		Model(&admin).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("⚠️  Failed to record admin last login: %v", err)
	}
	admin.LastLoginAt = &now

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"admin_token",
		token,
		12*60*60, // matches the 12h token lifetime
		"/",
		"",
		isProd,
		true, // httpOnly
	)

	log.Printf("✅ Admin login: %s (%s)", admin.Email, admin.Role)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", admin.ToResponse()))
}
