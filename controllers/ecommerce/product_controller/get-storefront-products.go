package product_controller

import (
	"log"
	"net/http"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/AngelSpinazzola/hardware-store-backend/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Returns the paginated product grid with optional category, subcategory, brand, price range, search and sorting filters. All filters are ANDed.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category name (case-insensitive)"
// @Param subcategory query string false "Subcategory ID (e.g. nvidia, amd-mothers)"
// @Param brand query string false "Brand (case-insensitive)"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param q query string false "Search term (product name)"
// @Param sortBy query string false "Sort mode" Enums(name, price-asc, price-desc, stock) default(name)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontProductRow}
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	state := parseFilterState(c)

	snapshot, err := services.LoadProductSnapshot()
	if err != nil {
		log.Printf("❌ Failed to load product snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	filtered := services.CatalogEngine().ApplyFilters(snapshot, state)

	totalCount := len(filtered)
	totalPages := (totalCount + limit - 1) / limit
	rows := toStorefrontRows(paginateSummaries(filtered, page, limit))

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		rows,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
