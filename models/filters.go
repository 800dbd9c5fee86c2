// models/filters.go
package models

// FilterMetadata represents all filter data for the storefront sidebar
type FilterMetadata struct {
	Categories   []CategoryData    `json:"categories"`
	Brands       []string          `json:"brands"`
	PriceRange   *PriceRangeData   `json:"priceRange"` // nil when the range is degenerate (slider suppressed)
	Availability *AvailabilityData `json:"availability"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// CategoryData represents a category with its rule-derived subcategories
type CategoryData struct {
	Name          string            `json:"name"`
	ProductCount  int               `json:"product_count"`
	Subcategories []SubcategoryData `json:"subcategories,omitempty"`
}

// SubcategoryData is one classifier rule exposed as a filter option
type SubcategoryData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PriceRangeData represents the minimum and maximum price for the current scope
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
