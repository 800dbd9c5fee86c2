package storefront

import (
	"testing"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func gpuFixtures() []models.ProductSummary {
	return []models.ProductSummary{
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Name: "RTX 4090", CategoryName: "Placas de video", Brand: strPtr("ASUS"), Price: 2000000, Stock: 3},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Name: "RX 7900", CategoryName: "Placas de video", Brand: strPtr("MSI"), Price: 1500000, Stock: 0},
	}
}

func TestApplyFiltersEndToEnd(t *testing.T) {
	e := NewEngine(nil)
	products := gpuFixtures()

	got := e.ApplyFilters(products, FilterState{
		SelectedCategory: "Placas de video",
		SortBy:           SortByPriceAsc,
	})

	require.Len(t, got, 2)
	assert.Equal(t, "RX 7900", got[0].Name)
	assert.Equal(t, "RTX 4090", got[1].Name)

	rule := e.Rules().Classify(products[0], "Placas de video")
	require.NotNil(t, rule)
	assert.Equal(t, "nvidia", rule.ID)
}

func TestApplyFiltersCategoryCaseInsensitive(t *testing.T) {
	e := NewEngine(nil)

	got := e.ApplyFilters(gpuFixtures(), FilterState{SelectedCategory: "PLACAS DE VIDEO"})
	assert.Len(t, got, 2)

	got = e.ApplyFilters(gpuFixtures(), FilterState{SelectedCategory: "Mothers"})
	assert.Empty(t, got)
}

func TestApplyFiltersSubcategory(t *testing.T) {
	e := NewEngine(nil)

	got := e.ApplyFilters(gpuFixtures(), FilterState{
		SelectedCategory:    "Placas de video",
		SelectedSubcategory: "amd",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "RX 7900", got[0].Name)
}

func TestApplyFiltersBrandAndPriceRange(t *testing.T) {
	e := NewEngine(nil)

	got := e.ApplyFilters(gpuFixtures(), FilterState{SelectedBrand: "msi"})
	require.Len(t, got, 1)
	assert.Equal(t, "RX 7900", got[0].Name)

	// Both bounds are inclusive.
	got = e.ApplyFilters(gpuFixtures(), FilterState{
		MinPrice: floatPtr(1500000),
		MaxPrice: floatPtr(1500000),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "RX 7900", got[0].Name)
}

func TestApplyFiltersSearchMatchesNameOnly(t *testing.T) {
	e := NewEngine(nil)

	got := e.ApplyFilters(gpuFixtures(), FilterState{SearchTerm: "rtx"})
	require.Len(t, got, 1)
	assert.Equal(t, "RTX 4090", got[0].Name)

	// Brand text does not participate in search.
	got = e.ApplyFilters(gpuFixtures(), FilterState{SearchTerm: "asus"})
	assert.Empty(t, got)
}

func TestApplyFiltersMonotonicity(t *testing.T) {
	e := NewEngine(nil)
	products := gpuFixtures()

	loose := FilterState{SelectedCategory: "Placas de video"}
	tight := loose
	tight.SelectedBrand = "ASUS"

	looseIDs := make(map[uuid.UUID]bool)
	for _, p := range e.ApplyFilters(products, loose) {
		looseIDs[p.ID] = true
	}
	for _, p := range e.ApplyFilters(products, tight) {
		assert.True(t, looseIDs[p.ID], "narrower state returned a product the looser state did not")
	}
}

func TestSortStabilityOnEqualPrices(t *testing.T) {
	e := NewEngine(nil)
	products := []models.ProductSummary{
		{Name: "B", CategoryName: "Placas de video", Price: 10},
		{Name: "A", CategoryName: "Placas de video", Price: 10},
	}

	got := e.ApplyFilters(products, FilterState{SortBy: SortByPriceAsc})

	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
}

func TestSortModes(t *testing.T) {
	e := NewEngine(nil)
	products := []models.ProductSummary{
		{Name: "Zeta", Price: 100, Stock: 1},
		{Name: "Alfa", Price: 300, Stock: 9},
		{Name: "Beta", Price: 200, Stock: 5},
	}

	byName := e.ApplyFilters(products, FilterState{SortBy: SortByName})
	assert.Equal(t, []string{"Alfa", "Beta", "Zeta"}, names(byName))

	byPriceDesc := e.ApplyFilters(products, FilterState{SortBy: SortByPriceDesc})
	assert.Equal(t, []string{"Alfa", "Beta", "Zeta"}, names(byPriceDesc))

	byStock := e.ApplyFilters(products, FilterState{SortBy: SortByStock})
	assert.Equal(t, []string{"Alfa", "Beta", "Zeta"}, names(byStock))
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	e := NewEngine(nil)
	products := []models.ProductSummary{
		{Name: "Zeta", Price: 1},
		{Name: "Alfa", Price: 2},
	}

	_ = e.ApplyFilters(products, FilterState{SortBy: SortByName})

	assert.Equal(t, "Zeta", products[0].Name)
	assert.Equal(t, "Alfa", products[1].Name)
}

func TestHasActiveFilters(t *testing.T) {
	assert.False(t, FilterState{}.HasActiveFilters())
	assert.False(t, FilterState{SortBy: SortByName}.HasActiveFilters())
	assert.True(t, FilterState{SortBy: SortByPriceAsc}.HasActiveFilters())
	assert.True(t, FilterState{SearchTerm: "ssd"}.HasActiveFilters())
	assert.True(t, FilterState{MinPrice: floatPtr(1)}.HasActiveFilters())
}

func TestFilterStateCategorySwitchClearsScopedFields(t *testing.T) {
	f := FilterState{}
	f.SelectCategory("Placas de Video")
	f.SelectSubcategory("Placas de Video", "nvidia")
	f.SelectedBrand = "ASUS"
	f.MinPrice = floatPtr(100)
	f.MaxPrice = floatPtr(200)

	f.SelectCategory("Mothers")

	assert.Equal(t, "Mothers", f.SelectedCategory)
	assert.Empty(t, f.SelectedSubcategory)
	assert.Empty(t, f.SelectedBrand)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
}

func TestFilterStateSubcategoryImpliesCategory(t *testing.T) {
	f := FilterState{SelectedCategory: "Placas de Video", SelectedBrand: "ASUS"}

	f.SelectSubcategory("Mothers", "amd-mothers")

	assert.Equal(t, "Mothers", f.SelectedCategory)
	assert.Equal(t, "amd-mothers", f.SelectedSubcategory)
	assert.Empty(t, f.SelectedBrand, "switching category must clear brand")
}

func TestFilterStateNormalizeDropsOrphanSubcategory(t *testing.T) {
	// "amd" exists both under Placas de video and Procesadores; without a
	// category the id is ambiguous and must not match across categories.
	e := NewEngine(nil)
	products := []models.ProductSummary{
		{Name: "RX 7900", CategoryName: "Placas de video", Price: 1500000, Stock: 2},
		{Name: "Ryzen 7 7800X3D", CategoryName: "Procesadores", Price: 600000, Stock: 5},
	}

	orphan := FilterState{SelectedSubcategory: "amd"}
	orphan.Normalize()
	assert.Empty(t, orphan.SelectedSubcategory)
	assert.Len(t, e.ApplyFilters(products, orphan), 2)

	scoped := FilterState{SelectedCategory: "Procesadores", SelectedSubcategory: "amd"}
	scoped.Normalize()
	got := e.ApplyFilters(products, scoped)
	require.Len(t, got, 1)
	assert.Equal(t, "Ryzen 7 7800X3D", got[0].Name)
}

func names(products []models.ProductSummary) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}
