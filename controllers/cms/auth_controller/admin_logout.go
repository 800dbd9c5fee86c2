package auth_controller

import (
	"net/http"
	"os"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/gin-gonic/gin"
)

// AdminLogout godoc
// @Summary Admin logout
// @Description Clears the admin auth cookie.
// @Tags CMS - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/auth/logout [post]
func AdminLogout(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie("admin_token", "", -1, "/", "", isProd, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
