// Package types defines the core business types for ebay-importer.
package types

import (
	"math"
	"time"
)

// ImportStatus represents the lifecycle state of an import.
type ImportStatus string

// Import status constants.
const (
	ImportPending ImportStatus = "pending"
	ImportSuccess ImportStatus = "success"
	ImportFailed  ImportStatus = "failed"
)

// MarkupType selects how a pricing rule adjusts the scraped price.
type MarkupType string

// Markup type constants.
const (
	MarkupPercent MarkupType = "percent"
	MarkupFixed   MarkupType = "fixed"
)

// ProductStatus is the Shopify product status applied on creation.
type ProductStatus string

// Product status constants.
const (
	ProductDraft  ProductStatus = "draft"
	ProductActive ProductStatus = "active"
)

// ScrapedProduct is the normalized result of scraping a single eBay listing.
type ScrapedProduct struct {
	ItemID      string  `json:"item_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`

	Images   []string         `json:"images"`
	Options  []ProductOption  `json:"options"`
	Variants []ProductVariant `json:"variants"`

	SourceURL      string            `json:"source_url"`
	Specifications map[string]string `json:"specifications,omitempty"`
	BulletPoints   []string          `json:"bullet_points,omitempty"`
	Rating         *float64          `json:"rating,omitempty"`
	RatingsTotal   *int              `json:"ratings_total,omitempty"`
	Categories     []string          `json:"categories"`
	Availability   string            `json:"availability"`
}

// ProductOption is a configurable product dimension (Color, Size, ...)
// with its selectable values. Out-of-stock values are already excluded.
type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ProductVariant is one fully-specified combination of option values,
// representing one purchasable SKU. ItemID is empty when the source does
// not expose per-variant identifiers.
type ProductVariant struct {
	ItemID    string            `json:"item_id"`
	Options   map[string]string `json:"options"`
	Available bool              `json:"available"`
	Price     float64           `json:"price"`
}

// ImportRecord is one row of the merchant-visible import history.
type ImportRecord struct {
	ID         string `json:"id"           db:"id"`
	Shop       string `json:"shop"         db:"shop"`
	EbayItemID string `json:"ebay_item_id" db:"ebay_item_id"`
	SourceURL  string `json:"source_url"   db:"source_url"`
	Title      string `json:"title"        db:"title"`

	Price    float64 `json:"price"     db:"price"`
	Currency string  `json:"currency"  db:"currency"`

	ImageCount   int `json:"image_count"   db:"image_count"`
	VariantCount int `json:"variant_count" db:"variant_count"`

	ShopifyProductID string       `json:"shopify_product_id,omitempty" db:"shopify_product_id"`
	Status           ImportStatus `json:"status"                       db:"status"`
	ErrorText        string       `json:"error_text,omitempty"         db:"error_text"`

	LastSyncedAt *time.Time `json:"last_synced_at,omitempty" db:"last_synced_at"`
	CreatedAt    time.Time  `json:"created_at"               db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"               db:"updated_at"`
}

// ShopSettings holds per-shop import preferences.
type ShopSettings struct {
	Shop           string        `json:"shop"            db:"shop"`
	Pricing        PricingRule   `json:"pricing"         db:"pricing"`
	DefaultStatus  ProductStatus `json:"default_status"  db:"default_status"`
	ImportImages   bool          `json:"import_images"   db:"import_images"`
	ImportVariants bool          `json:"import_variants" db:"import_variants"`
	CreatedAt      time.Time     `json:"created_at"      db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"      db:"updated_at"`
}

// PricingRule adjusts a scraped price before it is sent to Shopify.
type PricingRule struct {
	Type   MarkupType `json:"type"`
	Amount float64    `json:"amount"`
}

// Apply returns the adjusted price, rounded to cents. A zero-value rule
// passes prices through unchanged.
func (r PricingRule) Apply(price float64) float64 {
	var adjusted float64
	switch r.Type {
	case MarkupPercent:
		adjusted = price * (1 + r.Amount/100)
	case MarkupFixed:
		adjusted = price + r.Amount
	default:
		adjusted = price
	}
	if adjusted < 0 {
		return 0
	}
	return math.Round(adjusted*100) / 100
}

// DefaultSettings returns the settings applied to a shop that has never
// saved any.
func DefaultSettings(shop string) *ShopSettings {
	return &ShopSettings{
		Shop:           shop,
		Pricing:        PricingRule{Type: MarkupPercent, Amount: 0},
		DefaultStatus:  ProductDraft,
		ImportImages:   true,
		ImportVariants: true,
	}
}
