package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product is a hardware catalog item. Brand and Platform are free text and may
// be empty; the taxonomy engine treats missing values as empty strings.
type Product struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string         `json:"name" gorm:"not null;index"`
	Description  string         `json:"description" gorm:"not null"`
	CategoryName string         `json:"category_name" gorm:"column:category_name;not null;index:idx_products_category"`
	Brand        *string        `json:"brand,omitempty" gorm:"type:varchar(100);index"`
	Platform     *string        `json:"platform,omitempty" gorm:"type:varchar(100)"`
	Price        float64        `json:"price" gorm:"type:numeric(14,2);not null;check:price >= 0"`
	Stock        int            `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	ImageURL     string         `json:"image_url" gorm:"type:text"` // served from the external asset host
	Specs        datatypes.JSON `json:"specs" gorm:"type:jsonb;not null;default:'{}'"`
	Status       string         `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Storefront Snapshot / Response Models
// ═══════════════════════════════════════════════════════════

// ProductSummary is the in-memory snapshot row the filter engine operates on.
// It is what the storefront list endpoints return after filtering and sorting.
type ProductSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryName string    `json:"category_name"`
	Brand        *string   `json:"brand,omitempty"`
	Platform     *string   `json:"platform,omitempty"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	ImageURL     string    `json:"image_url"`
}

// BrandValue returns the brand as a plain string, empty when unset.
func (p ProductSummary) BrandValue() string {
	if p.Brand == nil {
		return ""
	}
	return *p.Brand
}

// PlatformValue returns the platform as a plain string, empty when unset.
func (p ProductSummary) PlatformValue() string {
	if p.Platform == nil {
		return ""
	}
	return *p.Platform
}

// Summary projects the persisted product onto its snapshot row.
func (p *Product) Summary() ProductSummary {
	return ProductSummary{
		ID:           p.ID,
		Name:         p.Name,
		CategoryName: p.CategoryName,
		Brand:        p.Brand,
		Platform:     p.Platform,
		Price:        p.Price,
		Stock:        p.Stock,
		ImageURL:     p.ImageURL,
	}
}

// StorefrontProductRow is one row of the storefront product grid. PriceDisplay
// carries the locale-formatted price so the UI never formats numbers itself.
type StorefrontProductRow struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryName string    `json:"category_name"`
	Brand        *string   `json:"brand,omitempty"`
	Price        float64   `json:"price"`
	PriceDisplay string    `json:"price_display"`
	Stock        int       `json:"stock"`
	InStock      bool      `json:"in_stock"`
	ImageURL     string    `json:"image_url"`
}

// StorefrontProductDetail is the single-product view, with the classified
// subcategory attached for badge rendering (omitted when no rule matched).
type StorefrontProductDetail struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	CategoryName    string         `json:"category_name"`
	Brand           *string        `json:"brand,omitempty"`
	Platform        *string        `json:"platform,omitempty"`
	Price           float64        `json:"price"`
	PriceDisplay    string         `json:"price_display"`
	Stock           int            `json:"stock"`
	ImageURL        string         `json:"image_url"`
	Specs           datatypes.JSON `json:"specs"`
	SubcategoryID   *string        `json:"subcategory_id,omitempty"`
	SubcategoryName *string        `json:"subcategory_name,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
