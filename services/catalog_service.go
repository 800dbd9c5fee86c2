package services

import (
	"log"

	catalog_cache "github.com/AngelSpinazzola/hardware-store-backend/cache"
	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/AngelSpinazzola/hardware-store-backend/storefront"
)

// The filter engine is stateless over the embedded taxonomy rules; one shared
// instance serves every request.
var catalogEngine = storefront.NewEngine(nil)

// CatalogEngine returns the shared storefront filter engine.
func CatalogEngine() *storefront.Engine {
	return catalogEngine
}

// LoadProductSnapshot returns the active-product snapshot the filter engine
// runs over, refreshing it from Postgres when the cached copy expired.
func LoadProductSnapshot() ([]models.ProductSummary, error) {
	if snapshot, ok := catalog_cache.GetSnapshot(); ok {
		return snapshot, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			p.id,
			p.name,
			p.category_name,
			p.brand,
			p.platform,
			p.price,
			p.stock,
			COALESCE(p.image_url, '') AS image_url
		FROM products p
		WHERE p.status = 'Active'
		ORDER BY p.created_at DESC
	`

	snapshot := make([]models.ProductSummary, 0)
	if err := config.StoreGorm.
		WithContext(ctx).
		Raw(query).
		Scan(&snapshot).Error; err != nil {
		return nil, err
	}

	catalog_cache.SetSnapshot(snapshot)
	log.Printf("✅ Product snapshot refreshed: %d active products", len(snapshot))
	return snapshot, nil
}

// GlobalFilterMetadata builds the unscoped sidebar metadata (all categories,
// global price bounds, availability counts). The brand facet is empty at this
// level because brands are category-scoped.
func GlobalFilterMetadata() (*models.FilterMetadata, error) {
	if meta, ok := catalog_cache.GetMetadata(); ok {
		return meta, nil
	}

	snapshot, err := LoadProductSnapshot()
	if err != nil {
		return nil, err
	}

	meta := buildFilterMetadata(snapshot, "", "")
	catalog_cache.SetMetadata(meta)
	return meta, nil
}

// ScopedFilterMetadata builds the sidebar metadata for a category (and
// optionally subcategory) selection. Scoped variants are cheap to compute from
// the snapshot, so only the global variant is cached.
func ScopedFilterMetadata(category, subcategory string) (*models.FilterMetadata, error) {
	snapshot, err := LoadProductSnapshot()
	if err != nil {
		return nil, err
	}
	return buildFilterMetadata(snapshot, category, subcategory), nil
}

func buildFilterMetadata(snapshot []models.ProductSummary, category, subcategory string) *models.FilterMetadata {
	availability := storefront.AvailabilityCounts(snapshot)

	meta := &models.FilterMetadata{
		Categories:   catalogEngine.CategoryFacets(snapshot),
		Brands:       catalogEngine.AvailableBrands(snapshot, category, subcategory),
		Availability: &availability,
	}

	// A degenerate range (every product at the same price) carries no
	// filtering value; the slider is suppressed by leaving PriceRange nil.
	bounds := catalogEngine.PriceBounds(snapshot, category)
	if bounds.Min != bounds.Max {
		meta.PriceRange = &bounds
	}

	return meta
}
