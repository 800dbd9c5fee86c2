package product_controller

import (
	"strconv"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/AngelSpinazzola/hardware-store-backend/storefront"
	"github.com/AngelSpinazzola/hardware-store-backend/utils"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// parseFilterState maps the query string onto a filter state. Unparsable
// price bounds are treated as absent, an unknown sortBy falls back to the
// default name order, and a subcategory without a category is dropped.
func parseFilterState(c *gin.Context) storefront.FilterState {
	state := storefront.FilterState{
		SelectedCategory:    c.Query("category"),
		SelectedSubcategory: c.Query("subcategory"),
		SelectedBrand:       c.Query("brand"),
		SearchTerm:          c.Query("q"),
		SortBy:              storefront.ParseSortMode(c.Query("sortBy")),
	}

	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			state.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			state.MaxPrice = &v
		}
	}

	state.Normalize()
	return state
}

// paginateSummaries slices the filtered result for the requested page.
func paginateSummaries(filtered []models.ProductSummary, page, limit int) []models.ProductSummary {
	start := (page - 1) * limit
	if start >= len(filtered) {
		return []models.ProductSummary{}
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// toStorefrontRows projects snapshot rows onto the grid response shape.
func toStorefrontRows(summaries []models.ProductSummary) []models.StorefrontProductRow {
	rows := make([]models.StorefrontProductRow, 0, len(summaries))
	for _, p := range summaries {
		rows = append(rows, models.StorefrontProductRow{
			ID:           p.ID,
			Name:         p.Name,
			CategoryName: p.CategoryName,
			Brand:        p.Brand,
			Price:        p.Price,
			PriceDisplay: utils.FormatPrice(p.Price),
			Stock:        p.Stock,
			InStock:      p.Stock > 0,
			ImageURL:     p.ImageURL,
		})
	}
	return rows
}
