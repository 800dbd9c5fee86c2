// Package taxonomy assigns hardware products to subcategories using a
// keyword rule table. The table is data, not code: it ships as an embedded
// JSON artifact and can be overridden with an external file at startup, so
// new categories and brands are added without touching classifier logic.
package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

//go:embed rules.json
var embeddedRules []byte

// SubcategoryRule is an ordered matching rule. A product matches when any
// keyword is a substring of its lower-cased name+brand+platform text; the
// lowest Priority wins when several rules match.
type SubcategoryRule struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Priority int      `json:"priority"`
}

// CategoryRule groups the subcategory rules of one top-level category.
// BrandFilterExempt marks categories whose subcategories already partition
// by brand, so a separate brand facet would be redundant.
type CategoryRule struct {
	Name              string            `json:"name"`
	BrandFilterExempt bool              `json:"brand_filter_exempt,omitempty"`
	Types             []SubcategoryRule `json:"types"`
}

type rulesFile struct {
	Categories []CategoryRule `json:"categories"`
}

// Table is the immutable, case-insensitive category rule table.
// Load it once at process start; it never changes afterwards.
type Table struct {
	byCategory map[string]CategoryRule
}

// NewTable builds a table from in-memory rules. Category names are keyed
// case-insensitively; a later duplicate replaces an earlier one.
func NewTable(categories []CategoryRule) *Table {
	t := &Table{byCategory: make(map[string]CategoryRule, len(categories))}
	for _, cat := range categories {
		t.byCategory[normalizeCategory(cat.Name)] = cat
	}
	return t
}

// Load reads a rule table from a JSON artifact on disk.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy rules: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Table, error) {
	var file rulesFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse taxonomy rules: %w", err)
	}
	return NewTable(file.Categories), nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table parsed from the embedded rules artifact.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := parse(embeddedRules)
		if err != nil {
			// The embedded artifact is part of the build; failing to parse
			// it is a programming error, not a runtime condition.
			panic(fmt.Sprintf("embedded taxonomy rules invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Subcategories returns the rules of a category ordered by priority.
// Unknown categories yield nil.
func (t *Table) Subcategories(categoryName string) []SubcategoryRule {
	cat, ok := t.byCategory[normalizeCategory(categoryName)]
	if !ok {
		return nil
	}
	out := make([]SubcategoryRule, len(cat.Types))
	copy(out, cat.Types)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// BrandFilterExempt reports whether the brand facet is suppressed for a category.
func (t *Table) BrandFilterExempt(categoryName string) bool {
	cat, ok := t.byCategory[normalizeCategory(categoryName)]
	return ok && cat.BrandFilterExempt
}

// HasCategory reports whether the table has rules for a category.
func (t *Table) HasCategory(categoryName string) bool {
	_, ok := t.byCategory[normalizeCategory(categoryName)]
	return ok
}

func normalizeCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
