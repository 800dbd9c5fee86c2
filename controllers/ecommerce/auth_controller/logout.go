package auth_controller

import (
	"net/http"
	"os"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Log out the current customer
// @Description Clears the auth cookie. The JWT itself is stateless; logging out only removes the browser's copy.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie("auth_token", "", -1, "/", "", isProd, true)
	c.SetCookie("user_data", "", -1, "/", "", isProd, false)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
