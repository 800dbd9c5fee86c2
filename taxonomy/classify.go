package taxonomy

import (
	"strings"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
)

// Classify maps a product to the subcategory rule it matches within the given
// category, or nil when the category is unknown or no rule matches. Callers
// treat nil as "no subcategory applies", never as an error.
//
// Matching is a substring check over the lower-cased concatenation of name,
// brand and platform; missing fields contribute nothing. When several rules
// match (mixed listing text can name both Intel and AMD), the lowest priority
// value wins, which keeps the result deterministic. Mutual exclusivity is not
// enforced by content: a product whose text mentions an unrelated brand token
// can match that rule, and the priority order is the documented tie-break.
func (t *Table) Classify(p models.ProductSummary, categoryName string) *SubcategoryRule {
	cat, ok := t.byCategory[normalizeCategory(categoryName)]
	if !ok {
		return nil
	}

	haystack := strings.ToLower(p.Name + " " + p.BrandValue() + " " + p.PlatformValue())

	var best *SubcategoryRule
	for i := range cat.Types {
		rule := &cat.Types[i]
		if !matchesAny(haystack, rule.Keywords) {
			continue
		}
		if best == nil || rule.Priority < best.Priority {
			best = rule
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

func matchesAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
