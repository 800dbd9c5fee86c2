package storefront

import (
	"sort"
	"strings"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
)

// AvailableBrands derives the brand facet options for the current selection.
// The brand filter is category-scoped and never shown globally, so a missing
// category yields an empty list; categories marked brand-filter-exempt in the
// rule table (their subcategories already partition by brand) also yield an
// empty list. Otherwise brands come from the category-filtered products,
// further narrowed to the classified subcategory when one is selected, with
// blank values dropped, deduplicated and sorted ascending.
func (e *Engine) AvailableBrands(products []models.ProductSummary, selectedCategory, selectedSubcategory string) []string {
	if selectedCategory == "" {
		return []string{}
	}
	if e.rules.BrandFilterExempt(selectedCategory) {
		return []string{}
	}

	seen := make(map[string]struct{})
	brands := make([]string, 0)
	for _, p := range products {
		if !strings.EqualFold(p.CategoryName, selectedCategory) {
			continue
		}
		if selectedSubcategory != "" {
			rule := e.rules.Classify(p, p.CategoryName)
			if rule == nil || rule.ID != selectedSubcategory {
				continue
			}
		}
		brand := strings.TrimSpace(p.BrandValue())
		if brand == "" {
			continue
		}
		if _, dup := seen[brand]; dup {
			continue
		}
		seen[brand] = struct{}{}
		brands = append(brands, brand)
	}
	sort.Strings(brands)
	return brands
}

// PriceBounds computes the min/max price over the (optionally) category
// filtered products, ignoring non-positive prices. An empty scope yields
// {0, 0}. When Min == Max the range carries no filtering value and callers
// must suppress the price control entirely.
func (e *Engine) PriceBounds(products []models.ProductSummary, selectedCategory string) models.PriceRangeData {
	var bounds models.PriceRangeData
	found := false
	for _, p := range products {
		if selectedCategory != "" && !strings.EqualFold(p.CategoryName, selectedCategory) {
			continue
		}
		if p.Price <= 0 {
			continue
		}
		if !found {
			bounds.Min, bounds.Max = p.Price, p.Price
			found = true
			continue
		}
		if p.Price < bounds.Min {
			bounds.Min = p.Price
		}
		if p.Price > bounds.Max {
			bounds.Max = p.Price
		}
	}
	return bounds
}

// AvailabilityCounts splits the snapshot into in-stock and out-of-stock totals.
func AvailabilityCounts(products []models.ProductSummary) models.AvailabilityData {
	var counts models.AvailabilityData
	for _, p := range products {
		if p.Stock > 0 {
			counts.InStock++
		} else {
			counts.OutOfStock++
		}
	}
	return counts
}

// CategoryFacets lists the categories present in the snapshot with product
// counts and their rule-derived subcategories, ordered by name. Categories
// without taxonomy rules simply carry no subcategory options.
func (e *Engine) CategoryFacets(products []models.ProductSummary) []models.CategoryData {
	counts := make(map[string]int)
	names := make(map[string]string) // lower-cased -> first-seen spelling
	for _, p := range products {
		key := strings.ToLower(p.CategoryName)
		if _, ok := names[key]; !ok {
			names[key] = p.CategoryName
		}
		counts[key]++
	}

	out := make([]models.CategoryData, 0, len(names))
	for key, name := range names {
		cat := models.CategoryData{Name: name, ProductCount: counts[key]}
		for _, sub := range e.rules.Subcategories(name) {
			cat.Subcategories = append(cat.Subcategories, models.SubcategoryData{ID: sub.ID, Name: sub.Name})
		}
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
