package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSidebarStartsAtAllCategories(t *testing.T) {
	s := NewSidebar()
	assert.Equal(t, ViewAllCategories, s.View)
	assert.Empty(t, s.Category)
	assert.Empty(t, s.Subcategory)
}

func TestSidebarSelectCategory(t *testing.T) {
	s := NewSidebar()
	f := FilterState{SelectedBrand: "ASUS", MinPrice: floatPtr(1), MaxPrice: floatPtr(2)}

	s.SelectCategory("Placas de Video", &f)

	assert.Equal(t, ViewCategoryExpanded, s.View)
	assert.Equal(t, "Placas de Video", s.Category)
	assert.Equal(t, "Placas de Video", f.SelectedCategory)
	assert.Empty(t, f.SelectedBrand)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
}

func TestSidebarSelectSubcategorySwitchesCategoryFirst(t *testing.T) {
	s := NewSidebar()
	f := FilterState{}
	s.SelectCategory("Placas de Video", &f)

	s.SelectSubcategory("Mothers", "intel-mothers", &f)

	assert.Equal(t, ViewSubcategorySelected, s.View)
	assert.Equal(t, "Mothers", s.Category)
	assert.Equal(t, "intel-mothers", s.Subcategory)
	assert.Equal(t, "Mothers", f.SelectedCategory)
	assert.Equal(t, "intel-mothers", f.SelectedSubcategory)
}

func TestSidebarBackToCategoriesResetsFilters(t *testing.T) {
	s := NewSidebar()
	f := FilterState{SearchTerm: "rtx"}
	s.SelectSubcategory("Placas de Video", "nvidia", &f)
	f.SelectedBrand = "ASUS"

	s.BackToCategories(&f)

	assert.Equal(t, ViewAllCategories, s.View)
	assert.Empty(t, s.Category)
	assert.Empty(t, s.Subcategory)
	assert.Empty(t, f.SelectedCategory)
	assert.Empty(t, f.SelectedSubcategory)
	assert.Empty(t, f.SelectedBrand)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	// Search term is not a sidebar dimension and survives the reset.
	assert.Equal(t, "rtx", f.SearchTerm)
}

func TestSidebarAccordionSingleSelection(t *testing.T) {
	s := NewSidebar()

	s.ToggleExpand("Placas de Video")
	assert.Equal(t, "Placas de Video", s.ExpandedCategory)

	// Expanding another category collapses the first.
	s.ToggleExpand("Mothers")
	assert.Equal(t, "Mothers", s.ExpandedCategory)

	// Toggling the expanded one collapses it.
	s.ToggleExpand("Mothers")
	assert.Empty(t, s.ExpandedCategory)
}

func TestSidebarResetAllCollapsesAccordion(t *testing.T) {
	s := NewSidebar()
	f := FilterState{}
	s.ToggleExpand("Mothers")
	s.SelectSubcategory("Mothers", "amd-mothers", &f)

	s.ResetAll(&f)

	assert.Equal(t, ViewAllCategories, s.View)
	assert.Empty(t, s.ExpandedCategory)
	assert.Empty(t, f.SelectedCategory)
}
