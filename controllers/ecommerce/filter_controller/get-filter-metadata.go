package filter_controller

import (
	"log"
	"net/http"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/AngelSpinazzola/hardware-store-backend/services"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get filter metadata for the storefront sidebar
// @Description Returns categories with subcategories, the brand facet for the current category scope, price bounds, and availability counts. Without a category the brand list is empty (brands are category-scoped) and price bounds cover the whole catalog. A degenerate price range is returned as null.
// @Tags Storefront - Filters
// @Produce json
// @Param category query string false "Scope the brand facet and price bounds to a category"
// @Param subcategory query string false "Narrow the brand facet to a classified subcategory"
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	category := c.Query("category")
	subcategory := c.Query("subcategory")

	var (
		meta *models.FilterMetadata
		err  error
	)

	// The global variant is the hottest request and the only cached one;
	// scoped variants are computed per call from the snapshot.
	if category == "" && subcategory == "" {
		meta, err = services.GlobalFilterMetadata()
	} else {
		meta, err = services.ScopedFilterMetadata(category, subcategory)
	}
	if err != nil {
		log.Printf("❌ Failed to build filter metadata: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", meta))
}
