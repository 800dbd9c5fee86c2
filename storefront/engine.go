package storefront

import (
	"sort"
	"strings"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/AngelSpinazzola/hardware-store-backend/taxonomy"
)

// Engine composes the taxonomy table with the filter predicates. It is
// stateless apart from the immutable rule table and safe for concurrent use.
type Engine struct {
	rules *taxonomy.Table
}

// NewEngine builds an engine over a rule table. A nil table falls back to the
// embedded default rules.
func NewEngine(rules *taxonomy.Table) *Engine {
	if rules == nil {
		rules = taxonomy.Default()
	}
	return &Engine{rules: rules}
}

// Rules exposes the underlying taxonomy table.
func (e *Engine) Rules() *taxonomy.Table {
	return e.rules
}

// ApplyFilters returns the products matching every active dimension of the
// filter state, in the order dictated by state.SortBy. All dimensions are
// ANDed; a dimension with no value is a no-op. The input slice is never
// mutated and repeated calls with equal inputs yield value-equal output.
func (e *Engine) ApplyFilters(products []models.ProductSummary, state FilterState) []models.ProductSummary {
	out := make([]models.ProductSummary, 0, len(products))
	for _, p := range products {
		if !e.matches(p, state) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, state.SortBy)
	return out
}

func (e *Engine) matches(p models.ProductSummary, state FilterState) bool {
	if state.SelectedCategory != "" && !strings.EqualFold(p.CategoryName, state.SelectedCategory) {
		return false
	}
	if state.SelectedSubcategory != "" {
		rule := e.rules.Classify(p, p.CategoryName)
		if rule == nil || rule.ID != state.SelectedSubcategory {
			return false
		}
	}
	if state.SelectedBrand != "" && !strings.EqualFold(p.BrandValue(), state.SelectedBrand) {
		return false
	}
	if state.MinPrice != nil && p.Price < *state.MinPrice {
		return false
	}
	if state.MaxPrice != nil && p.Price > *state.MaxPrice {
		return false
	}
	if state.SearchTerm != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(state.SearchTerm)) {
		return false
	}
	return true
}

// sortProducts orders the filtered subset in place. Sorting is stable so that
// products with equal keys keep their original relative order.
func sortProducts(products []models.ProductSummary, mode SortMode) {
	switch mode {
	case SortByPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortByPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortByStock:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Stock > products[j].Stock })
	default:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	}
}
