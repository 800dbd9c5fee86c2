package ecommerce_routes

import (
	store_category "github.com/AngelSpinazzola/hardware-store-backend/controllers/ecommerce/category_controller"
	store_filter "github.com/AngelSpinazzola/hardware-store-backend/controllers/ecommerce/filter_controller"
	store_product "github.com/AngelSpinazzola/hardware-store-backend/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)        // Filtered, sorted, paginated grid
		products.GET("/:id", store_product.GetStorefrontProductByID) // Single product with subcategory badge
	}

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetCategories) // Categories with rule-derived subcategories
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
}
