package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/AngelSpinazzola/hardware-store-backend/services"
	"github.com/AngelSpinazzola/hardware-store-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStorefrontProductByID godoc
// @Summary Get a single storefront product
// @Description Returns the full product detail with the classified subcategory badge and the locale-formatted price.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.StorefrontProductDetail}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.StoreGorm.
		WithContext(ctx).
		Where("id = ? AND status = 'Active'", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("❌ Failed to fetch product %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	detail := models.StorefrontProductDetail{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		CategoryName: product.CategoryName,
		Brand:        product.Brand,
		Platform:     product.Platform,
		Price:        product.Price,
		PriceDisplay: utils.FormatPrice(product.Price),
		Stock:        product.Stock,
		ImageURL:     product.ImageURL,
		Specs:        product.Specs,
		CreatedAt:    product.CreatedAt,
	}

	// Subcategory badge, omitted when no rule matches
	engine := services.CatalogEngine()
	if rule := engine.Rules().Classify(product.Summary(), product.CategoryName); rule != nil {
		detail.SubcategoryID = &rule.ID
		detail.SubcategoryName = &rule.Name
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
