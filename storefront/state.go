// Package storefront implements the faceted product filtering engine: filter
// state, facet extraction (brands, price bounds), predicate composition with
// stable sorting, and the hierarchical sidebar state machine. Everything here
// is a pure, synchronous transformation over an in-memory product snapshot;
// data fetching belongs to the HTTP/persistence layers.
package storefront

// SortMode selects the comparator applied after filtering.
type SortMode string

const (
	SortByName      SortMode = "name" // default "relevance" order
	SortByPriceAsc  SortMode = "price-asc"
	SortByPriceDesc SortMode = "price-desc"
	SortByStock     SortMode = "stock"
)

// ParseSortMode maps a query value onto a SortMode, falling back to name order.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortByPriceAsc, SortByPriceDesc, SortByStock:
		return SortMode(s)
	default:
		return SortByName
	}
}

// FilterState holds every filter dimension of a browsing session in one
// explicit, serializable struct. Empty string / nil means "no constraint on
// this dimension". It is passed by value into the pure engine functions.
type FilterState struct {
	SelectedCategory    string   `json:"selected_category,omitempty" form:"category"`
	SelectedSubcategory string   `json:"selected_subcategory,omitempty" form:"subcategory"`
	SelectedBrand       string   `json:"selected_brand,omitempty" form:"brand"`
	MinPrice            *float64 `json:"min_price,omitempty" form:"minPrice"`
	MaxPrice            *float64 `json:"max_price,omitempty" form:"maxPrice"`
	SearchTerm          string   `json:"search_term,omitempty" form:"q"`
	SortBy              SortMode `json:"sort_by,omitempty" form:"sortBy"`
}

// SelectCategory switches the category and clears every dimension scoped to
// it: subcategory, brand and the price window (price bounds are category
// scoped, so a previously chosen window is invalid after the switch).
func (f *FilterState) SelectCategory(category string) {
	f.SelectedCategory = category
	f.SelectedSubcategory = ""
	f.SelectedBrand = ""
	f.MinPrice = nil
	f.MaxPrice = nil
}

// SelectSubcategory selects a subcategory within a category. Selecting a
// subcategory always implies its category: when the category differs from the
// current selection the category is switched first.
func (f *FilterState) SelectSubcategory(category, subcategory string) {
	if f.SelectedCategory != category {
		f.SelectCategory(category)
	}
	f.SelectedSubcategory = subcategory
}

// Normalize drops dimensions that only make sense inside their parent scope.
// A subcategory id is unique per category, not globally (two categories may
// both carry an "amd" subcategory), so a subcategory without a category is
// cleared rather than matched across categories.
func (f *FilterState) Normalize() {
	if f.SelectedCategory == "" {
		f.SelectedSubcategory = ""
	}
}

// Clear resets every dimension to "no constraint".
func (f *FilterState) Clear() {
	*f = FilterState{}
}

// HasActiveFilters reports whether any dimension narrows the product list or
// the sort differs from the default. It only drives the "clear filters"
// affordance; it never participates in filtering itself.
func (f FilterState) HasActiveFilters() bool {
	return f.SelectedCategory != "" ||
		f.SelectedSubcategory != "" ||
		f.SelectedBrand != "" ||
		f.MinPrice != nil ||
		f.MaxPrice != nil ||
		f.SearchTerm != "" ||
		(f.SortBy != "" && f.SortBy != SortByName)
}
