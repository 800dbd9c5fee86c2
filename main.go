// @title Hardware Store API
// @version 1.0
// @description Storefront and back-office API for the hardware store: faceted catalog browsing, Google sign-in, bank-transfer checkout and admin order management.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	_ "github.com/AngelSpinazzola/hardware-store-backend/docs"
	"github.com/AngelSpinazzola/hardware-store-backend/middleware"
	"github.com/AngelSpinazzola/hardware-store-backend/routes/cms_routes"
	"github.com/AngelSpinazzola/hardware-store-backend/routes/ecommerce_routes"
	"github.com/AngelSpinazzola/hardware-store-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// JWT service for admin auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// Google OAuth for customer sign-in
	config.InitGoogleOAuth()

	// CORS, credentials allowed for the cookie-based sessions
	allowedOrigins := []string{"http://localhost:3000", config.GetFrontendURL()}
	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		allowedOrigins = append(allowedOrigins, strings.Split(extra, ",")...)
	}
	corsCfg := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // needed for invoice downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	// Back office, rate limited as a whole
	adminGroup := api.Group("")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupAdminRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Public storefront and customer area (no rate limiter)
	ecommerce_routes.SetupStorefrontRoutes(api)
	ecommerce_routes.SetupAuthRoutes(api)
	ecommerce_routes.SetupUserRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
