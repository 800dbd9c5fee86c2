package storefront

import (
	"testing"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func facetFixtures() []models.ProductSummary {
	return []models.ProductSummary{
		{Name: "RTX 4090", CategoryName: "Placas de Video", Brand: strPtr("ASUS"), Price: 2000000, Stock: 3},
		{Name: "RTX 4070", CategoryName: "Placas de Video", Brand: strPtr("Gigabyte"), Price: 1100000, Stock: 5},
		{Name: "RX 7900", CategoryName: "Placas de Video", Brand: strPtr("MSI"), Price: 1500000, Stock: 0},
		{Name: "RX 6600", CategoryName: "Placas de Video", Brand: strPtr("ASUS"), Price: 500000, Stock: 2},
		{Name: "Ryzen 7 5800X", CategoryName: "Procesadores", Brand: strPtr("AMD"), Price: 350000, Stock: 10},
		{Name: "Teclado Genérico", CategoryName: "Periféricos", Brand: strPtr("  "), Price: 15000, Stock: 7},
	}
}

func TestAvailableBrandsRequiresCategory(t *testing.T) {
	e := NewEngine(nil)

	// No category selected: the brand facet is never shown globally.
	assert.Empty(t, e.AvailableBrands(facetFixtures(), "", ""))
	assert.Empty(t, e.AvailableBrands(facetFixtures(), "", "nvidia"))
}

func TestAvailableBrandsDedupedSorted(t *testing.T) {
	e := NewEngine(nil)

	brands := e.AvailableBrands(facetFixtures(), "placas de video", "")
	assert.Equal(t, []string{"ASUS", "Gigabyte", "MSI"}, brands)
}

func TestAvailableBrandsScopedToSubcategory(t *testing.T) {
	e := NewEngine(nil)

	brands := e.AvailableBrands(facetFixtures(), "Placas de Video", "amd")
	assert.Equal(t, []string{"ASUS", "MSI"}, brands)
}

func TestAvailableBrandsExemptCategory(t *testing.T) {
	e := NewEngine(nil)

	// Procesadores subcategories already partition by brand.
	assert.Empty(t, e.AvailableBrands(facetFixtures(), "Procesadores", ""))
}

func TestAvailableBrandsSkipsBlankValues(t *testing.T) {
	e := NewEngine(nil)

	assert.Empty(t, e.AvailableBrands(facetFixtures(), "Periféricos", ""))
}

func TestPriceBounds(t *testing.T) {
	e := NewEngine(nil)

	bounds := e.PriceBounds(facetFixtures(), "Placas de Video")
	assert.Equal(t, 500000.0, bounds.Min)
	assert.Equal(t, 2000000.0, bounds.Max)

	all := e.PriceBounds(facetFixtures(), "")
	assert.Equal(t, 15000.0, all.Min)
	assert.Equal(t, 2000000.0, all.Max)
}

func TestPriceBoundsEmptyScope(t *testing.T) {
	e := NewEngine(nil)

	bounds := e.PriceBounds(facetFixtures(), "Gabinetes")
	assert.Equal(t, models.PriceRangeData{Min: 0, Max: 0}, bounds)
}

func TestPriceBoundsDegenerateSinglePoint(t *testing.T) {
	e := NewEngine(nil)
	products := []models.ProductSummary{
		{Name: "A", CategoryName: "Fuentes", Price: 500},
		{Name: "B", CategoryName: "Fuentes", Price: 500},
	}

	bounds := e.PriceBounds(products, "Fuentes")
	assert.Equal(t, 500.0, bounds.Min)
	assert.Equal(t, 500.0, bounds.Max)
	// Min == Max: callers suppress the slider (see filter metadata handler).
}

func TestPriceBoundsIgnoresNonPositivePrices(t *testing.T) {
	e := NewEngine(nil)
	products := []models.ProductSummary{
		{Name: "Regalo", CategoryName: "Fuentes", Price: 0},
		{Name: "Fuente 650W", CategoryName: "Fuentes", Price: 80000},
	}

	bounds := e.PriceBounds(products, "Fuentes")
	assert.Equal(t, 80000.0, bounds.Min)
	assert.Equal(t, 80000.0, bounds.Max)
}

func TestAvailabilityCounts(t *testing.T) {
	counts := AvailabilityCounts(facetFixtures())
	assert.Equal(t, 5, counts.InStock)
	assert.Equal(t, 1, counts.OutOfStock)
}

func TestCategoryFacets(t *testing.T) {
	e := NewEngine(nil)

	cats := e.CategoryFacets(facetFixtures())
	require.Len(t, cats, 3)

	// Sorted by name.
	assert.Equal(t, "Periféricos", cats[0].Name)
	assert.Equal(t, "Placas de Video", cats[1].Name)
	assert.Equal(t, "Procesadores", cats[2].Name)

	assert.Equal(t, 4, cats[1].ProductCount)
	require.Len(t, cats[1].Subcategories, 2)
	assert.Equal(t, "nvidia", cats[1].Subcategories[0].ID)
	assert.Equal(t, "amd", cats[1].Subcategories[1].ID)

	// No rules for peripherals: category listed without subcategory options.
	assert.Empty(t, cats[0].Subcategories)
}
