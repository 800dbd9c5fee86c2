package storefront

// SidebarView is the navigation state of the category sidebar. Modeling the
// three views as an explicit tagged state keeps illegal combinations (a
// subcategory selected without its category) unrepresentable.
type SidebarView string

const (
	ViewAllCategories       SidebarView = "all_categories"
	ViewCategoryExpanded    SidebarView = "category_expanded"
	ViewSubcategorySelected SidebarView = "subcategory_selected"
)

// Sidebar drives the drill-down navigation (categories list ↔ subcategory
// list ↔ subcategory-filtered view). Transitions are synchronous in-memory
// updates triggered by selection events; the associated FilterState is
// adjusted so the filter invariants (category implies scoping of subcategory,
// brand and price window) hold after every transition.
type Sidebar struct {
	View        SidebarView `json:"view"`
	Category    string      `json:"category,omitempty"`
	Subcategory string      `json:"subcategory,omitempty"`

	// ExpandedCategory is the single category whose subcategory list is
	// visibly expanded in the list view. It is a single-selection accordion,
	// not an independent per-category toggle.
	ExpandedCategory string `json:"expanded_category,omitempty"`
}

// NewSidebar starts at the all-categories view.
func NewSidebar() Sidebar {
	return Sidebar{View: ViewAllCategories}
}

// SelectCategory drills into a category from any state and clears the
// subcategory, brand and price dimensions of the filter state.
func (s *Sidebar) SelectCategory(category string, filters *FilterState) {
	s.View = ViewCategoryExpanded
	s.Category = category
	s.Subcategory = ""
	filters.SelectCategory(category)
}

// SelectSubcategory selects a subcategory; if it belongs to a different
// category than the current one, the category switches first.
func (s *Sidebar) SelectSubcategory(category, subcategory string, filters *FilterState) {
	if s.Category != category {
		s.SelectCategory(category, filters)
	}
	s.View = ViewSubcategorySelected
	s.Subcategory = subcategory
	filters.SelectSubcategory(category, subcategory)
}

// BackToCategories returns to the all-categories view and fully resets the
// category, subcategory, brand and price dimensions.
func (s *Sidebar) BackToCategories(filters *FilterState) {
	s.View = ViewAllCategories
	s.Category = ""
	s.Subcategory = ""
	filters.SelectedCategory = ""
	filters.SelectedSubcategory = ""
	filters.SelectedBrand = ""
	filters.MinPrice = nil
	filters.MaxPrice = nil
}

// ResetAll is BackToCategories plus collapsing the accordion.
func (s *Sidebar) ResetAll(filters *FilterState) {
	s.BackToCategories(filters)
	s.ExpandedCategory = ""
}

// ToggleExpand expands one category in the list view, collapsing any other;
// toggling the expanded category collapses it. Purely visual, it never
// touches the filter state.
func (s *Sidebar) ToggleExpand(category string) {
	if s.ExpandedCategory == category {
		s.ExpandedCategory = ""
		return
	}
	s.ExpandedCategory = category
}
