package ecommerce_routes

import (
	"github.com/AngelSpinazzola/hardware-store-backend/controllers/ecommerce/auth_controller"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.GET("/google/login", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)
		auth.POST("/logout", auth_controller.Logout)
	}
}
