package ecommerce_routes

import (
	"github.com/AngelSpinazzola/hardware-store-backend/controllers/ecommerce/user_controller/address_controller"
	"github.com/AngelSpinazzola/hardware-store-backend/controllers/ecommerce/user_controller/order_controller"
	"github.com/AngelSpinazzola/hardware-store-backend/controllers/ecommerce/user_controller/payment_controller"
	"github.com/AngelSpinazzola/hardware-store-backend/controllers/ecommerce/user_controller/profile_controller"
	"github.com/AngelSpinazzola/hardware-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.RouterGroup) {
	// Everything under /user requires a customer session
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())

	user.GET("/me", profile_controller.GetMe)
	user.PUT("/me", profile_controller.UpdateProfile)

	addresses := user.Group("/addresses")
	{
		addresses.GET("", address_controller.GetAddresses)
		addresses.POST("", address_controller.AddAddress)
		addresses.PUT("/:id", address_controller.UpdateAddress)
		addresses.DELETE("/:id", address_controller.DeleteAddress)
		addresses.PATCH("/:id/default", address_controller.SetDefaultAddress)
	}

	orders := user.Group("/orders")
	{
		orders.GET("", order_controller.GetOrders)
		orders.POST("", order_controller.CreateOrder)
		orders.GET("/:id", order_controller.GetOrderDetails)
		orders.GET("/:id/payment", payment_controller.GetPaymentStatus)
		orders.POST("/:id/payment", payment_controller.SubmitReceipt)
	}
}
