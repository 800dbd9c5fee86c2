package cms_routes

import (
	"time"

	cms_admin "github.com/AngelSpinazzola/hardware-store-backend/controllers/cms/admin_controller"
	cms_auth "github.com/AngelSpinazzola/hardware-store-backend/controllers/cms/auth_controller"
	cms_order "github.com/AngelSpinazzola/hardware-store-backend/controllers/cms/order_controller"
	cms_payment "github.com/AngelSpinazzola/hardware-store-backend/controllers/cms/payment_controller"
	"github.com/AngelSpinazzola/hardware-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")

	// Login is rate limited hard; everything else sits behind the admin JWT
	auth := admin.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimiter(10, time.Minute), cms_auth.AdminLogin)

		protectedAuth := auth.Group("")
		protectedAuth.Use(middleware.AdminAuthMiddleware())
		{
			protectedAuth.POST("/logout", cms_auth.AdminLogout)
			protectedAuth.GET("/me", cms_auth.GetAdminMe)
		}
	}

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		orders := protected.Group("/orders")
		{
			orders.GET("", cms_order.GetOrders)
			orders.GET("/stats", cms_order.GetOrderStats)
			orders.GET("/:id", cms_order.GetOrderDetailsByID)
			orders.GET("/:id/invoice", cms_order.DownloadOrderInvoicePDF)
			orders.PATCH("/:id/status", cms_order.UpdateOrderStatus)
		}

		payments := protected.Group("/payments")
		{
			payments.GET("", cms_payment.GetPendingPayments)
			payments.PATCH("/:id/review", cms_payment.ReviewPayment)
		}

		// Admin accounts are managed by super admins only
		admins := protected.Group("/admins")
		admins.Use(middleware.RequireSuperAdminMiddleware())
		{
			admins.POST("", cms_admin.CreateAdmin)
		}
	}
}
